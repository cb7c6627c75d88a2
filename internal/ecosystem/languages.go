package ecosystem

// languageByExtension maps a lowercased file extension to a display language name.
var languageByExtension = map[string]string{
	".py": "Python",
	".pyw": "Python",
	".pyi": "Python Stub",
	".pyx": "Cython",
	".pxd": "Cython",
	".ipynb": "Jupyter Notebook",
	".js": "JavaScript",
	".mjs": "JavaScript",
	".cjs": "JavaScript",
	".ts": "TypeScript",
	".mts": "TypeScript",
	".cts": "TypeScript",
	".d.ts": "TypeScript Declaration",
	".jsx": "React JSX",
	".tsx": "React TSX",
	".html": "HTML",
	".htm": "HTML",
	".xhtml": "XHTML",
	".css": "CSS",
	".scss": "SCSS",
	".sass": "Sass",
	".less": "Less",
	".styl": "Stylus",
	".vue": "Vue",
	".svelte": "Svelte",
	".astro": "Astro",
	".liquid": "Liquid",
	".hbs": "Handlebars",
	".handlebars": "Handlebars",
	".ejs": "EJS",
	".pug": "Pug",
	".jade": "Jade",
	".mustache": "Mustache",
	".njk": "Nunjucks",
	".twig": "Twig",
	".jinja": "Jinja",
	".jinja2": "Jinja2",
	".j2": "Jinja2",
	".slim": "Slim",
	".haml": "HAML",
	".marko": "Marko",
	".dust": "Dust",
	".eta": "Eta",
	".edge": "Edge",
	".blade.php": "Blade",
	".cshtml": "Razor",
	".vbhtml": "Razor VB",
	".razor": "Razor",
	".java": "Java",
	".kt": "Kotlin",
	".kts": "Kotlin Script",
	".scala": "Scala",
	".sc": "Scala Script",
	".groovy": "Groovy",
	".gvy": "Groovy",
	".gy": "Groovy",
	".gsh": "Groovy",
	".gradle": "Gradle",
	".gradle.kts": "Gradle Kotlin",
	".c": "C",
	".h": "C Header",
	".i": "C Inline",
	".ii": "C++ Inline",
	".cpp": "C++",
	".cc": "C++",
	".cxx": "C++",
	".c++": "C++",
	".hpp": "C++ Header",
	".hh": "C++ Header",
	".hxx": "C++ Header",
	".h++": "C++ Header",
	".inl": "C++ Inline",
	".ipp": "C++ Inline",
	".tcc": "C++ Template",
	".tpp": "C++ Template",
	".rs": "Rust",
	".go": "Go",
	".zig": "Zig",
	".nim": "Nim",
	".nimble": "Nimble",
	".d": "D",
	".di": "D Interface",
	".v": "Coq",
	".vv": "V",
	".odin": "Odin",
	".carbon": "Carbon",
	".cs": "C#",
	".csx": "C# Script",
	".fs": "F#",
	".fsi": "F# Signature",
	".fsx": "F# Script",
	".fsscript": "F# Script",
	".vb": "VB.NET",
	".vbs": "VBScript",
	".asp": "ASP Classic",
	".aspx": "ASP.NET",
	".ascx": "ASP.NET Control",
	".asmx": "ASP.NET Service",
	".axd": "ASP.NET Handler",
	".swift": "Swift",
	".m": "MATLAB",
	".mm": "Objective-C++",
	".storyboard": "Storyboard",
	".xib": "Interface Builder",
	".pbxproj": "Xcode Project",
	".xcconfig": "Xcode Config",
	".entitlements": "Entitlements",
	".plist": "Property List",
	".sh": "Shell",
	".bash": "Bash",
	".zsh": "Zsh",
	".fish": "Fish",
	".ksh": "Korn Shell",
	".csh": "C Shell",
	".tcsh": "TENEX C Shell",
	".ps1": "PowerShell",
	".psm1": "PowerShell Module",
	".psd1": "PowerShell Data",
	".bat": "Batch",
	".cmd": "Batch",
	".rb": "Ruby",
	".rbw": "Ruby",
	".rake": "Rake",
	".gemspec": "Gemspec",
	".erb": "ERB",
	".rhtml": "ERB",
	".pl": "Perl",
	".pm": "Perl Module",
	".pod": "Pod",
	".t": "Perl Test",
	".lua": "Lua",
	".tcl": "Tcl",
	".tk": "Tcl/Tk",
	".awk": "AWK",
	".sed": "Sed",
	".php": "PHP",
	".php3": "PHP",
	".php4": "PHP",
	".php5": "PHP",
	".php7": "PHP",
	".phps": "PHP",
	".phtml": "PHP HTML",
	".inc": "Include",
	".hs": "Haskell",
	".lhs": "Literate Haskell",
	".elm": "Elm",
	".clj": "Clojure",
	".cljs": "ClojureScript",
	".cljc": "Clojure Common",
	".edn": "EDN",
	".ml": "OCaml",
	".mli": "OCaml Interface",
	".mll": "OCaml Lex",
	".mly": "OCaml Yacc",
	".re": "Reason",
	".rei": "Reason Interface",
	".res": "ReScript",
	".resi": "ReScript Interface",
	".sml": "Standard ML",
	".sig": "Standard ML Signature",
	".fun": "Standard ML Functor",
	".ex": "Elixir",
	".exs": "Elixir Script",
	".eex": "EEx",
	".heex": "HEEx",
	".leex": "LEEx",
	".erl": "Erlang",
	".hrl": "Erlang Header",
	".app.src": "Erlang App",
	".lisp": "Lisp",
	".lsp": "Lisp",
	".cl": "Common Lisp",
	".el": "Emacs Lisp",
	".elc": "Emacs Lisp Compiled",
	".scm": "Scheme",
	".ss": "Scheme",
	".rkt": "Racket",
	".scrbl": "Scribble",
	".fnl": "Fennel",
	".hy": "Hy",
	".coffee": "CoffeeScript",
	".litcoffee": "Literate CoffeeScript",
	".cr": "Crystal",
	".ecr": "Crystal Template",
	".pas": "Pascal",
	".pp": "Puppet",
	".dpr": "Delphi",
	".dfm": "Delphi Form",
	".lpr": "Lazarus",
	".ada": "Ada",
	".adb": "Ada Body",
	".ads": "Ada Spec",
	".cob": "COBOL",
	".cbl": "COBOL",
	".cobol": "COBOL",
	".cpy": "COBOL Copybook",
	".f": "Fortran",
	".for": "Fortran",
	".ftn": "Fortran",
	".f77": "Fortran 77",
	".f90": "Fortran 90",
	".f95": "Fortran 95",
	".f03": "Fortran 2003",
	".f08": "Fortran 2008",
	".f18": "Fortran 2018",
	".forth": "Forth",
	".fth": "Forth",
	".4th": "Forth",
	".factor": "Factor",
	".io": "Io",
	".ioke": "Ioke",
	".pony": "Pony",
	".red": "Red",
	".reds": "Red/System",
	".ring": "Ring",
	".wren": "Wren",
	".vala": "Vala",
	".vapi": "Vala API",
	".hx": "Haxe",
	".hxml": "Haxe Build",
	".moon": "MoonScript",
	".mint": "Mint",
	".gleam": "Gleam",
	".roc": "Roc",
	".unison": "Unison",
	".idris": "Idris",
	".idr": "Idris",
	".agda": "Agda",
	".lean": "Lean",
	".coq": "Coq",
	".pvs": "PVS",
	".sol": "Solidity",
	".vy": "Vyper",
	".yul": "Yul",
	".move": "Move",
	".clar": "Clarity",
	".ride": "Ride",
	".teal": "TEAL",
	".ligo": "LIGO",
	".mligo": "CameLIGO",
	".jsligo": "JsLIGO",
	".religo": "ReasonLIGO",
	".michelson": "Michelson",
	".tz": "Michelson",
	".fc": "Func",
	".cairo": "Cairo",
	".ink": "ink!",
	".rs.ink": "ink!",
	".json": "JSON",
	".jsonc": "JSON with Comments",
	".json5": "JSON5",
	".jsonl": "JSON Lines",
	".ndjson": "Newline JSON",
	".geojson": "GeoJSON",
	".yaml": "YAML",
	".yml": "YAML",
	".xml": "XML",
	".xsd": "XML Schema",
	".dtd": "DTD",
	".rng": "RELAX NG",
	".xsl": "XSLT",
	".xslt": "XSLT",
	".toml": "TOML",
	".ini": "INI",
	".cfg": "Config",
	".conf": "Config",
	".config": "Config",
	".env": "Environment",
	".env.example": "Environment Example",
	".env.local": "Environment Local",
	".env.development": "Environment Development",
	".env.production": "Environment Production",
	".properties": "Properties",
	".hocon": "HOCON",
	".hcl": "HCL",
	".tf": "Terraform",
	".tfvars": "Terraform Variables",
	".tfstate": "Terraform State",
	".nix": "Nix",
	".dhall": "Dhall",
	".cue": "CUE",
	".jsonnet": "Jsonnet",
	".libsonnet": "Jsonnet Library",
	".pkl": "Pkl",
	".rego": "Rego",
	".sentinel": "Sentinel",
	".ron": "RON",
	".kdl": "KDL",
	".r": "R",
	".rmd": "R Markdown",
	".rnw": "R Noweb",
	".jl": "Julia",
	".mat": "Unity Material",
	".mlx": "MATLAB Live",
	".sas": "SAS",
	".sps": "SPSS",
	".do": "Stata",
	".ado": "Stata",
	".dta": "Stata Data",
	".stan": "Stan",
	".bug": "BUGS",
	".jags": "JAGS",
	".sql": "SQL",
	".psql": "PostgreSQL",
	".pgsql": "PostgreSQL",
	".mysql": "MySQL",
	".plsql": "PL/SQL",
	".tsql": "T-SQL",
	".cql": "Cassandra CQL",
	".cypher": "Cypher",
	".sparql": "SPARQL",
	".rq": "SPARQL",
	".graphql": "GraphQL",
	".gql": "GraphQL",
	".prisma": "Prisma",
	".edgeql": "EdgeQL",
	".surql": "SurrealQL",
	".aql": "AQL",
	".n1ql": "N1QL",
	".flux": "Flux",
	".influxql": "InfluxQL",
	".md": "Markdown",
	".mdx": "MDX",
	".markdown": "Markdown",
	".mdown": "Markdown",
	".mkd": "Markdown",
	".mkdn": "Markdown",
	".rst": "reStructuredText",
	".rest": "reStructuredText",
	".txt": "Text",
	".text": "Text",
	".tex": "LaTeX",
	".ltx": "LaTeX",
	".latex": "LaTeX",
	".sty": "LaTeX Style",
	".cls": "LaTeX Class",
	".bib": "BibTeX",
	".adoc": "AsciiDoc",
	".asciidoc": "AsciiDoc",
	".asc": "AsciiDoc",
	".org": "Org Mode",
	".rdoc": "RDoc",
	".creole": "Creole",
	".wiki": "Wiki",
	".mediawiki": "MediaWiki",
	".textile": "Textile",
	".djot": "Djot",
	".typ": "Typst",
	".dockerfile": "Dockerfile",
	".containerfile": "Containerfile",
	".vagrantfile": "Vagrantfile",
	".make": "Makefile",
	".mk": "Makefile",
	".mak": "Makefile",
	".makefile": "Makefile",
	".justfile": "Justfile",
	".taskfile": "Taskfile",
	".earthfile": "Earthfile",
	".jenkinsfile": "Jenkinsfile",
	".gitlab-ci.yml": "GitLab CI",
	".travis.yml": "Travis CI",
	".circleci": "CircleCI",
	".github": "GitHub Actions",
	".buildkite": "Buildkite",
	".drone.yml": "Drone CI",
	".azure-pipelines.yml": "Azure Pipelines",
	".bitbucket-pipelines.yml": "Bitbucket Pipelines",
	".appveyor.yml": "AppVeyor",
	".harness": "Harness",
	".helmfile": "Helmfile",
	".argocd": "ArgoCD",
	".epp": "Puppet Template",
	".cf": "CloudFormation",
	".cfn": "CloudFormation",
	".sam": "AWS SAM",
	".bicep": "Bicep",
	".arm": "ARM Template",
	".pulumi": "Pulumi",
	".cdktf": "CDK for Terraform",
	".helm": "Helm",
	".chart": "Helm Chart",
	".kustomization": "Kustomize",
	".k8s": "Kubernetes",
	".cmake": "CMake",
	".bazel": "Bazel",
	".buck": "Buck",
	".build": "Build",
	".bzl": "Starlark",
	".sky": "Starlark",
	".gn": "GN",
	".gni": "GN Include",
	".meson": "Meson",
	".ninja": "Ninja",
	".gyp": "GYP",
	".gypi": "GYP Include",
	".podspec": "CocoaPods",
	".fastfile": "Fastlane",
	".sln": "Solution",
	".csproj": "C# Project",
	".fsproj": "F# Project",
	".vbproj": "VB.NET Project",
	".vcxproj": "VC++ Project",
	".targets": "MSBuild Targets",
	".props": "MSBuild Props",
	".proj": "MSBuild Project",
	".dart": "Dart",
	".arb": "Dart ARB",
	".proto": "Protocol Buffers",
	".protobuf": "Protocol Buffers",
	".thrift": "Thrift",
	".avsc": "Avro Schema",
	".avdl": "Avro IDL",
	".fbs": "FlatBuffers",
	".capnp": "Cap'n Proto",
	".aidl": "Android IDL",
	".hal": "Android HAL",
	".gd": "GDScript",
	".gdscript": "GDScript",
	".tscn": "Godot Scene",
	".tres": "Godot Resource",
	".gdns": "Godot NativeScript",
	".gdshader": "Godot Shader",
	".shader": "Shader",
	".hlsl": "HLSL",
	".glsl": "GLSL",
	".frag": "Fragment Shader",
	".vert": "Vertex Shader",
	".geom": "Geometry Shader",
	".comp": "Compute Shader",
	".tesc": "Tessellation Control",
	".tese": "Tessellation Evaluation",
	".spv": "SPIR-V",
	".wgsl": "WGSL",
	".metal": "Metal",
	".cg": "Cg",
	".fx": "Effect",
	".cgfx": "CgFX",
	".uasset": "Unreal Asset",
	".umap": "Unreal Map",
	".uplugin": "Unreal Plugin",
	".uproject": "Unreal Project",
	".unity": "Unity Scene",
	".prefab": "Unity Prefab",
	".anim": "Unity Animation",
	".controller": "Unity Controller",
	".asset": "Unity Asset",
	".asm": "Assembly",
	".s": "Assembly",
	".S": "Assembly",
	".nasm": "NASM",
	".yasm": "YASM",
	".gas": "GNU Assembly",
	".vhd": "VHDL",
	".vhdl": "VHDL",
	".sv": "SystemVerilog",
	".svh": "SystemVerilog Header",
	".bsv": "Bluespec",
	".sdc": "SDC",
	".xdc": "XDC",
	".ucf": "UCF",
	".qsf": "Quartus",
	".pcf": "PCF",
	".lpf": "LPF",
	".spice": "SPICE",
	".cir": "SPICE",
	".lib": "Library",
	".lef": "LEF",
	".def": "DEF",
	".gds": "GDSII",
	".oas": "OASIS",
	".kicad_sch": "KiCad Schema",
	".kicad_pcb": "KiCad PCB",
	".brd": "Eagle Board",
	".sch": "Schematic",
	".pcb": "PCB",
	".pem": "PEM Certificate",
	".crt": "Certificate",
	".cer": "Certificate",
	".der": "DER Certificate",
	".p12": "PKCS12",
	".pfx": "PKCS12",
	".key": "Private Key",
	".pub": "Public Key",
	".csr": "Certificate Request",
	".ca": "CA Certificate",
	".keystore": "Java Keystore",
	".jks": "Java Keystore",
	".truststore": "Trust Store",
	".license": "License",
	".bsd": "BSD License",
	".mit": "MIT License",
	".apache": "Apache License",
	".gpl": "GPL License",
	".lgpl": "LGPL License",
	".mpl": "MPL License",
	".isc": "ISC License",
	".unlicense": "Unlicense",
	".wasm": "WebAssembly",
	".wat": "WebAssembly Text",
	".wast": "WebAssembly Script",
	".witx": "WITX",
	".wit": "WIT",
	".openapi": "OpenAPI",
	".swagger": "Swagger",
	".raml": "RAML",
	".api": "API Blueprint",
	".apib": "API Blueprint",
	".wsdl": "WSDL",
	".wadl": "WADL",
	".grpc": "gRPC",
	".smithy": "Smithy",
	".asyncapi": "AsyncAPI",
	".abc": "ABC Notation",
	".ly": "LilyPond",
	".ily": "LilyPond Include",
	".mma": "MMA",
	".csound": "Csound",
	".csd": "Csound",
	".scd": "SuperCollider",
	".faust": "Faust",
	".dsp": "Faust DSP",
	".chuck": "ChucK",
	".sonic-pi": "Sonic Pi",
	".log": "Log",
	".diff": "Diff",
	".patch": "Patch",
	".ics": "iCalendar",
	".vcf": "vCard",
	".csv": "CSV",
	".tsv": "TSV",
	".parquet": "Parquet",
	".arrow": "Arrow",
	".orc": "ORC",
	".avro": "Avro",
	".qmd": "Quarto",
	".weave.jl": "Weave Julia",
	".jmd": "Julia Markdown",
	".pluto.jl": "Pluto",
	".editorconfig": "EditorConfig",
	".prettierrc": "Prettier",
	".eslintrc": "ESLint",
	".stylelintrc": "Stylelint",
	".babelrc": "Babel",
	".browserslistrc": "Browserslist",
	".npmrc": "npm",
	".nvmrc": "nvm",
	".ruby-version": "Ruby Version",
	".python-version": "Python Version",
	".node-version": "Node Version",
	".tool-versions": "asdf",
}
