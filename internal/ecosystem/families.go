package ecosystem

// familyOrder fixes the lookup order for family classification so a language
// listed under several families always resolves to the same one.
var familyOrder = []string{
	"Systems",
	"Web",
	"Template",
	"Scripting",
	"JVM",
	"Functional",
	"Lisp",
	"Data",
	"Query",
	"Config",
	"Documentation",
	"DevOps",
	"Microsoft",
	"Apple",
	"Mobile",
	"Blockchain",
	"Game",
	"Legacy",
	"Other Languages",
	"Notebooks",
	"API",
	"Security",
	"License",
	"Packages",
	"Editor",
	"Testing",
	"Linting",
	"VCS",
	"Audio",
	"Data Files",
}

var languageFamilies = map[string][]string{
	"Systems": {
		"C", "C++", "Rust", "Go", "Zig", "Nim", "D", "V", "Odin", "Carbon", "Assembly", "NASM",
		"YASM", "GNU Assembly", "Verilog", "SystemVerilog", "VHDL", "Bluespec", "C Header",
		"C++ Header", "C++ Inline", "C++ Template", "C Inline", "D Interface",
	},
	"Web": {
		"JavaScript", "TypeScript", "TypeScript Declaration", "HTML", "XHTML", "CSS", "SCSS", "Sass",
		"Less", "Stylus", "React JSX", "React TSX", "Vue", "Svelte", "Astro", "WebAssembly",
		"WebAssembly Text", "WGSL",
	},
	"Template": {
		"Liquid", "Handlebars", "EJS", "Pug", "Jade", "Mustache", "Nunjucks", "Twig", "Jinja",
		"Jinja2", "Slim", "HAML", "Marko", "Dust", "Eta", "Edge", "Blade", "Razor", "Razor VB",
		"ERB", "PHP HTML",
	},
	"Scripting": {
		"Python", "Python Stub", "Cython", "Ruby", "Rake", "Gemspec", "Perl", "Perl Module",
		"Perl Documentation", "Perl Test", "Lua", "MoonScript", "Tcl", "Tcl/Tk", "AWK", "Sed",
		"Shell", "Bash", "Zsh", "Fish", "Korn Shell", "C Shell", "TENEX C Shell", "PowerShell",
		"PowerShell Module", "PowerShell Data", "Batch", "PHP",
	},
	"JVM": {
		"Java", "Kotlin", "Kotlin Script", "Scala", "Scala Script", "Groovy", "Gradle",
		"Gradle Kotlin", "Clojure", "ClojureScript", "Clojure Common",
	},
	"Functional": {
		"Haskell", "Literate Haskell", "Elm", "PureScript", "OCaml", "OCaml Interface", "OCaml Lex",
		"OCaml Yacc", "Reason", "Reason Interface", "ReScript", "ReScript Interface", "Standard ML",
		"Standard ML Signature", "Standard ML Functor", "F#", "F# Signature", "F# Script", "Erlang",
		"Erlang Header", "Erlang App", "Elixir", "Elixir Script", "EEx", "HEEx", "LEEx",
	},
	"Lisp": {
		"Lisp", "Common Lisp", "Emacs Lisp", "Emacs Lisp Compiled", "Scheme", "Racket", "Scribble",
		"Fennel", "Hy",
	},
	"Data": {
		"R", "R Markdown", "R Noweb", "Julia", "Julia Markdown", "SQL", "PostgreSQL", "MySQL",
		"PL/SQL", "T-SQL", "MATLAB", "MATLAB Live", "SAS", "SPSS", "Stata", "Stata Data", "Stan",
		"BUGS", "JAGS",
	},
	"Query": {
		"GraphQL", "Cypher", "SPARQL", "Prisma", "EdgeQL", "SurrealQL", "AQL", "N1QL",
		"Cassandra CQL", "Flux", "InfluxQL",
	},
	"Config": {
		"JSON", "JSON with Comments", "JSON5", "JSON Lines", "Newline JSON", "GeoJSON", "YAML",
		"XML", "XML Schema", "DTD", "RELAX NG", "XSLT", "TOML", "INI", "Config", "Environment",
		"Environment Example", "Environment Local", "Environment Development",
		"Environment Production", "Properties", "HOCON", "HCL", "Terraform", "Terraform Variables",
		"Terraform State", "Nix", "Dhall", "CUE", "Jsonnet", "Jsonnet Library", "Pkl", "Rego",
		"Sentinel", "RON", "KDL", "EDN",
	},
	"Documentation": {
		"Markdown", "MDX", "Readme", "Changelog", "History", "News", "Changes", "LaTeX",
		"LaTeX Style", "LaTeX Class", "BibTeX", "reStructuredText", "AsciiDoc", "Text", "Org Mode",
		"Pod", "RDoc", "Creole", "Wiki", "MediaWiki", "Textile", "Djot", "Typst", "Quarto",
	},
	"DevOps": {
		"Dockerfile", "Containerfile", "Docker Compose", "Docker Ignore", "Makefile", "Justfile",
		"Taskfile", "Earthfile", "Snakemake", "Gradle", "Gradle Kotlin", "Gradle Settings",
		"Gradle Kotlin Settings", "CMake", "Meson", "Ninja", "Bazel", "Starlark", "Buck", "GN",
		"GN Include", "GYP", "GYP Include", "SCons", "Premake", "xmake", "Tup", "Puppet",
		"Puppet Template", "Ansible", "Salt", "Chef", "Terraform", "Bicep", "ARM Template",
		"CloudFormation", "AWS SAM", "Pulumi", "Kubernetes", "Helm", "Helm Chart", "Kustomize",
		"Jenkinsfile", "Travis CI", "GitLab CI", "GitHub Actions", "CircleCI", "Azure Pipelines",
		"Bitbucket Pipelines", "AppVeyor", "Drone CI", "Netlify", "Vercel", "Render", "Fly.io",
		"Railway", "Heroku", "Vagrantfile", "Procfile", "Brewfile",
	},
	"Microsoft": {
		"C#", "C# Script", "VB.NET", "VBScript", "F#", "F# Signature", "F# Script", "ASP Classic",
		"ASP.NET", "ASP.NET Control", "ASP.NET Service", "ASP.NET Handler", "Razor", "Razor VB",
		"Solution", "C# Project", "F# Project", "VB.NET Project", "VC++ Project", "MSBuild Targets",
		"MSBuild Props", "MSBuild Project",
	},
	"Apple": {
		"Swift", "Swift Package", "Swift Package Lock", "Objective-C", "Objective-C++", "Storyboard",
		"Interface Builder", "Xcode Project", "Xcode Config", "Entitlements", "Property List",
	},
	"Mobile": {
		"Dart", "Dart ARB", "Flutter", "Android IDL", "Android HAL", "Kotlin", "Kotlin Script",
		"Java",
	},
	"Blockchain": {
		"Solidity", "Vyper", "Yul", "Move", "Clarity", "Ride", "TEAL", "LIGO", "CameLIGO", "JsLIGO",
		"ReasonLIGO", "Michelson", "Func", "Cairo", "ink!",
	},
	"Game": {
		"GDScript", "Godot Scene", "Godot Resource", "Godot NativeScript", "Godot Shader", "Shader",
		"HLSL", "GLSL", "Fragment Shader", "Vertex Shader", "Geometry Shader", "Compute Shader",
		"Tessellation Control", "Tessellation Evaluation", "SPIR-V", "Metal", "Cg", "Effect", "CgFX",
		"Unreal Asset", "Unreal Map", "Unreal Plugin", "Unreal Project", "Unity Scene",
		"Unity Prefab", "Unity Material", "Unity Animation", "Unity Controller", "Unity Asset",
	},
	"Legacy": {
		"COBOL", "COBOL Copybook", "Fortran", "Fortran 77", "Fortran 90", "Fortran 95",
		"Fortran 2003", "Fortran 2008", "Fortran 2018", "Pascal", "Delphi", "Delphi Form", "Lazarus",
		"Ada", "Ada Body", "Ada Spec", "Forth", "Factor",
	},
	"Other Languages": {
		"CoffeeScript", "Literate CoffeeScript", "Crystal", "Crystal Template", "Io", "Ioke", "Pony",
		"Red", "Red/System", "Ring", "Wren", "Vala", "Vala API", "Haxe", "Haxe Build", "Mint",
		"Gleam", "Roc", "Unison", "Idris", "Agda", "Lean", "Coq", "PVS",
	},
	"Notebooks": {
		"Jupyter Notebook", "Quarto", "Weave Julia", "Julia Markdown", "Pluto", "R Markdown",
		"Literate Haskell", "Literate CoffeeScript",
	},
	"API": {
		"OpenAPI", "Swagger", "RAML", "API Blueprint", "WSDL", "WADL", "gRPC", "Smithy", "AsyncAPI",
		"Protocol Buffers", "Thrift", "Avro Schema", "Avro IDL", "FlatBuffers", "Cap'n Proto",
	},
	"Security": {
		"PEM Certificate", "Certificate", "DER Certificate", "PKCS12", "Private Key", "Public Key",
		"Certificate Request", "CA Certificate", "Java Keystore", "Trust Store",
	},
	"License": {
		"License", "MIT License", "Apache License", "BSD License", "GPL License", "LGPL License",
		"MPL License", "ISC License", "WTFPL License", "CC0 License", "CC BY License", "Unlicense",
	},
	"Packages": {
		"npm Package", "npm Lock", "Yarn Lock", "pnpm Lock", "Bun Lock", "Cargo", "Cargo Lock",
		"Go Module", "Go Sum", "Go Workspace", "pyproject", "Python Setup", "Python Config",
		"Python Requirements", "Pipfile", "Pipfile Lock", "Poetry Lock", "PDM Lock", "uv Lock",
		"Composer", "Composer Lock", "Maven POM", "Gemfile", "Podfile", "CocoaPods", "Pubspec",
		"Pubspec Lock", "Mix", "Mix Lock", "Rebar", "Rebar Lock", "Cabal", "Stack", "Elm Package",
		"Dub", "Shards", "Shards Lock", "Spago", "Spago Packages", "Esy", "OPAM", "Dune",
		"Dune Project", "Julia Project", "Julia Manifest", "R Package", "R Namespace", "Conan",
		"vcpkg", "CPAN", "CPAN Meta", "NuGet Config", "NuGet Packages", "NuGet Props", "Paket",
		"Paket Lock",
	},
	"Editor": {
		"EditorConfig", "Prettier", "Prettier Ignore", "ESLint", "ESLint Ignore", "Stylelint",
		"Stylelint Ignore", "Babel", "Browserslist", "TypeScript Config", "JavaScript Config", "SWC",
		"Terser", "PostCSS", "Tailwind CSS", "Vite", "Next.js", "Nuxt", "Svelte", "Astro", "Remix",
		"Gatsby", "Angular", "Vue CLI", "Webpack", "Rollup", "esbuild", "Parcel", "Turborepo", "Nx",
		"Lerna", "Rush", "pnpm Workspace",
	},
	"Testing": {
		"Jest", "Jest Setup", "Vitest", "Playwright", "Cypress", "Mocha", "Karma", "Protractor",
		"pytest", "tox", "Coverage.py", "Coverage Report", "PHPUnit", "RSpec", "RSpec Rails",
		"Guard",
	},
	"Linting": {
		"Pylint", "Flake8", "isort", "mypy", "Bandit", "RuboCop", "RuboCop Todo", "ERB Lint",
		"Standard Ruby", "Reek", "Solhint", "Solium", "PHP_CodeSniffer", "PHPMD", "PHP CS Fixer",
		"PHPStan", "golangci-lint", "markdownlint", "yamllint", "ShellCheck", "Hadolint",
		"commitlint", "Commitizen", "semantic-release", "Husky", "lint-staged", "Renovate",
		"Dependabot",
	},
	"VCS": {
		"Git Ignore", "Git Attributes", "Git Modules", "Git Keep", "Git Config", "Git Message",
		"Git Mailmap", "Mercurial Ignore", "Mercurial Config", "SVN Ignore", "CVS Ignore",
		"Bazaar Ignore", "Perforce Ignore", "Code Owners",
	},
	"Audio": {
		"ABC Notation", "LilyPond", "LilyPond Include", "MMA", "Csound", "SuperCollider", "Faust",
		"Faust DSP", "ChucK", "Sonic Pi",
	},
	"Data Files": {
		"CSV", "TSV", "Parquet", "Arrow", "ORC", "Avro", "Log", "Diff", "Patch", "iCalendar",
		"vCard",
	},
}
