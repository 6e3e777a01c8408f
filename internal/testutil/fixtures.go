// internal/testutil/fixtures.go
package testutil

// Recipe fixtures (plain text only, no domain dependencies).

// MetaCommands is a recipe whose test section runs an executable.
const MetaCommands = `{% set version = "1.0" %}
package:
  name: foo
  version: {{ version }}
build:
  number: 0
requirements:
  build:
    - {{ compiler('c') }}
test:
  commands:
    - foo --help
`

// MetaImports is a python recipe tested through imports only.
const MetaImports = `{% set name = "pyfoo" %}
package:
  name: {{ name }}
  version: "2.3.1"
requirements:
  host:
    - python
test:
  imports:
    - pyfoo
    - pyfoo.io
`

// MetaNoVersion has no package.version.
const MetaNoVersion = `package:
  name: bar
test:
  imports:
    - bar
`

// MetaNoName has no package.name.
const MetaNoName = `package:
  version: "1.0"
test:
  commands:
    - foo --help
`

// MetaNoTest has no test section at all.
const MetaNoTest = `package:
  name: foo
  version: "1.0"
`

// MetaNullTest has a null test section.
const MetaNullTest = `package:
  name: foo
  version: "1.0"
test:
`

// MetaEmptyTest has a test section with neither commands nor imports.
const MetaEmptyTest = `package:
  name: foo
  version: "1.0"
test:
  requires:
    - pytest
`

// MetaBothSpecs declares imports and commands together.
const MetaBothSpecs = `package:
  name: foo
  version: "1.0"
test:
  imports:
    - foo
  commands:
    - foo --version
`

// MetaTemplating exercises every neutralised template construct.
const MetaTemplating = `{% set version = "0.5.2" %}
{% set sha = environ.get('SHA', 'none') %}
package:
  name: toolkit
  version: {{ version }}
source:
  url: https://example.org/toolkit-{{ version }}.tar.gz{{ undefined_suffix }}
build:
  run_exports:
    - {{ pin_subpackage('toolkit', max_pin="x.x") }}
requirements:
  build:
    - {{ compiler('cxx') }}
    - {{ stdlib('c') }}
    - {{ cdt('mesa-libgl-devel') }}
  host:
    - {{ pin_compatible('numpy') }}
    - prefix{{ os.environ.get('PREFIX') }}
test:
  commands:
    - toolkit --version
`
