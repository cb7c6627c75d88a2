package ecosystem

// languageByFilename covers files identified by name rather than extension:
// build files, manifests, licenses, CI configs, dotfiles.
var languageByFilename = map[string]string{
	"Makefile": "Makefile",
	"makefile": "Makefile",
	"GNUmakefile": "Makefile",
	"BSDmakefile": "Makefile",
	"Justfile": "Justfile",
	"justfile": "Justfile",
	"Taskfile": "Taskfile",
	"Rakefile": "Rake",
	"rakefile": "Rake",
	"Earthfile": "Earthfile",
	"Snakefile": "Snakemake",
	"SConstruct": "SCons",
	"SConscript": "SCons",
	"BUILD": "Bazel",
	"BUILD.bazel": "Bazel",
	"WORKSPACE": "Bazel",
	"WORKSPACE.bazel": "Bazel",
	"BUCK": "Buck",
	"Tupfile": "Tup",
	"Kbuild": "Kbuild",
	"Kconfig": "Kconfig",
	"Dockerfile": "Dockerfile",
	"dockerfile": "Dockerfile",
	"Containerfile": "Containerfile",
	"containerfile": "Containerfile",
	"docker-compose.yml": "Docker Compose",
	"docker-compose.yaml": "Docker Compose",
	"compose.yml": "Docker Compose",
	"compose.yaml": "Docker Compose",
	"Vagrantfile": "Vagrantfile",
	"Procfile": "Procfile",
	"Brewfile": "Brewfile",
	"Gemfile": "Gemfile",
	"Podfile": "Podfile",
	"Cartfile": "Cartfile",
	"Puppetfile": "Puppetfile",
	"Berksfile": "Berksfile",
	"Cheffile": "Cheffile",
	"Fastfile": "Fastlane",
	"Appfile": "Fastlane",
	"Matchfile": "Fastlane",
	"Deliverfile": "Fastlane",
	"Snapfile": "Fastlane",
	"Scanfile": "Fastlane",
	"Gymfile": "Fastlane",
	"Pluginfile": "Fastlane",
	"Jenkinsfile": "Jenkinsfile",
	".travis.yml": "Travis CI",
	".gitlab-ci.yml": "GitLab CI",
	"azure-pipelines.yml": "Azure Pipelines",
	"bitbucket-pipelines.yml": "Bitbucket Pipelines",
	"appveyor.yml": "AppVeyor",
	".drone.yml": "Drone CI",
	"netlify.toml": "Netlify",
	"vercel.json": "Vercel",
	"now.json": "Vercel",
	"render.yaml": "Render",
	"fly.toml": "Fly.io",
	"railway.toml": "Railway",
	"heroku.yml": "Heroku",
	"package.json": "npm Package",
	"package-lock.json": "npm Lock",
	"yarn.lock": "Yarn Lock",
	"pnpm-lock.yaml": "pnpm Lock",
	"bun.lockb": "Bun Lock",
	"Cargo.toml": "Cargo",
	"Cargo.lock": "Cargo Lock",
	"go.mod": "Go Module",
	"go.sum": "Go Sum",
	"go.work": "Go Workspace",
	"pyproject.toml": "pyproject",
	"setup.py": "Python Setup",
	"setup.cfg": "Python Config",
	"requirements.txt": "Python Requirements",
	"requirements.in": "Python Requirements",
	"Pipfile": "Pipfile",
	"Pipfile.lock": "Pipfile Lock",
	"poetry.lock": "Poetry Lock",
	"pdm.lock": "PDM Lock",
	"uv.lock": "uv Lock",
	"composer.json": "Composer",
	"composer.lock": "Composer Lock",
	"build.gradle": "Gradle",
	"settings.gradle": "Gradle Settings",
	"build.gradle.kts": "Gradle Kotlin",
	"settings.gradle.kts": "Gradle Kotlin Settings",
	"pom.xml": "Maven POM",
	"build.sbt": "SBT",
	"project/build.properties": "SBT Properties",
	"mix.exs": "Mix",
	"mix.lock": "Mix Lock",
	"rebar.config": "Rebar",
	"rebar.lock": "Rebar Lock",
	"pubspec.yaml": "Pubspec",
	"pubspec.lock": "Pubspec Lock",
	"Package.swift": "Swift Package",
	"Package.resolved": "Swift Package Lock",
	"Packages.props": "NuGet Props",
	"nuget.config": "NuGet Config",
	"packages.config": "NuGet Packages",
	"paket.dependencies": "Paket",
	"paket.lock": "Paket Lock",
	"cpanfile": "CPAN",
	"META.json": "CPAN Meta",
	"META.yml": "CPAN Meta",
	"cabal.project": "Cabal",
	"stack.yaml": "Stack",
	"elm.json": "Elm Package",
	"dub.json": "Dub",
	"dub.sdl": "Dub",
	"shard.yml": "Shards",
	"shard.lock": "Shards Lock",
	"spago.dhall": "Spago",
	"packages.dhall": "Spago Packages",
	"esy.json": "Esy",
	"opam": "OPAM",
	"dune": "Dune",
	"dune-project": "Dune Project",
	"Project.toml": "Julia Project",
	"Manifest.toml": "Julia Manifest",
	"DESCRIPTION": "R Package",
	"NAMESPACE": "R Namespace",
	"conanfile.txt": "Conan",
	"conanfile.py": "Conan",
	"vcpkg.json": "vcpkg",
	"xmake.lua": "xmake",
	"premake5.lua": "Premake",
	"meson.build": "Meson",
	"CMakeLists.txt": "CMake",
	"LICENSE": "License",
	"LICENSE.txt": "License",
	"LICENSE.md": "License",
	"LICENSE.rst": "License",
	"LICENSE-MIT": "MIT License",
	"LICENSE-APACHE": "Apache License",
	"LICENSE.MIT": "MIT License",
	"LICENSE.APACHE": "Apache License",
	"LICENCE": "License",
	"LICENCE.txt": "License",
	"LICENCE.md": "License",
	"COPYING": "License",
	"COPYING.txt": "License",
	"COPYING.md": "License",
	"UNLICENSE": "Unlicense",
	"UNLICENSE.txt": "Unlicense",
	"MIT-LICENSE": "MIT License",
	"MIT-LICENSE.txt": "MIT License",
	"Apache-2.0": "Apache License",
	"BSD-3-Clause": "BSD License",
	"GPL-3.0": "GPL License",
	"LGPL-3.0": "LGPL License",
	"MPL-2.0": "MPL License",
	"ISC": "ISC License",
	"WTFPL": "WTFPL License",
	"CC0": "CC0 License",
	"CC-BY-4.0": "CC BY License",
	"README": "Readme",
	"README.txt": "Readme",
	"README.md": "Readme",
	"README.rst": "Readme",
	"README.adoc": "Readme",
	"README.asciidoc": "Readme",
	"CHANGELOG": "Changelog",
	"CHANGELOG.md": "Changelog",
	"CHANGELOG.txt": "Changelog",
	"CHANGELOG.rst": "Changelog",
	"HISTORY": "History",
	"HISTORY.md": "History",
	"HISTORY.txt": "History",
	"HISTORY.rst": "History",
	"NEWS": "News",
	"NEWS.md": "News",
	"CHANGES": "Changes",
	"CHANGES.md": "Changes",
	"CHANGES.txt": "Changes",
	"AUTHORS": "Authors",
	"AUTHORS.md": "Authors",
	"AUTHORS.txt": "Authors",
	"CONTRIBUTORS": "Contributors",
	"CONTRIBUTORS.md": "Contributors",
	"MAINTAINERS": "Maintainers",
	"MAINTAINERS.md": "Maintainers",
	"CODEOWNERS": "Code Owners",
	"SECURITY": "Security",
	"SECURITY.md": "Security",
	"SECURITY.txt": "Security",
	"CODE_OF_CONDUCT": "Code of Conduct",
	"CODE_OF_CONDUCT.md": "Code of Conduct",
	"CONTRIBUTING": "Contributing",
	"CONTRIBUTING.md": "Contributing",
	"CONTRIBUTING.rst": "Contributing",
	"SUPPORT": "Support",
	"SUPPORT.md": "Support",
	"FUNDING": "Funding",
	"FUNDING.yml": "Funding",
	"CITATION": "Citation",
	"CITATION.cff": "Citation",
	"CITATION.bib": "Citation",
	"ACKNOWLEDGMENTS": "Acknowledgments",
	"ACKNOWLEDGMENTS.md": "Acknowledgments",
	"CREDITS": "Credits",
	"CREDITS.md": "Credits",
	"TODO": "Todo",
	"TODO.md": "Todo",
	"TODO.txt": "Todo",
	"ROADMAP": "Roadmap",
	"ROADMAP.md": "Roadmap",
	"FAQ": "FAQ",
	"FAQ.md": "FAQ",
	".gitignore": "Git Ignore",
	".gitattributes": "Git Attributes",
	".gitmodules": "Git Modules",
	".gitkeep": "Git Keep",
	".gitconfig": "Git Config",
	".gitmessage": "Git Message",
	".mailmap": "Git Mailmap",
	".hgignore": "Mercurial Ignore",
	".hgrc": "Mercurial Config",
	".svnignore": "SVN Ignore",
	".cvsignore": "CVS Ignore",
	".bzrignore": "Bazaar Ignore",
	".p4ignore": "Perforce Ignore",
	".fosseignore": "FOSS Ignore",
	".dockerignore": "Docker Ignore",
	".containerignore": "Container Ignore",
	".hadolint.yaml": "Hadolint",
	"hadolint.yaml": "Hadolint",
	".editorconfig": "EditorConfig",
	".prettierrc": "Prettier",
	".prettierrc.json": "Prettier",
	".prettierrc.yml": "Prettier",
	".prettierrc.yaml": "Prettier",
	".prettierrc.js": "Prettier",
	".prettierrc.cjs": "Prettier",
	".prettierrc.mjs": "Prettier",
	"prettier.config.js": "Prettier",
	"prettier.config.cjs": "Prettier",
	"prettier.config.mjs": "Prettier",
	".prettierignore": "Prettier Ignore",
	".eslintrc": "ESLint",
	".eslintrc.js": "ESLint",
	".eslintrc.cjs": "ESLint",
	".eslintrc.mjs": "ESLint",
	".eslintrc.json": "ESLint",
	".eslintrc.yml": "ESLint",
	".eslintrc.yaml": "ESLint",
	"eslint.config.js": "ESLint",
	"eslint.config.mjs": "ESLint",
	"eslint.config.cjs": "ESLint",
	".eslintignore": "ESLint Ignore",
	".stylelintrc": "Stylelint",
	".stylelintrc.json": "Stylelint",
	".stylelintrc.yml": "Stylelint",
	".stylelintrc.yaml": "Stylelint",
	".stylelintrc.js": "Stylelint",
	"stylelint.config.js": "Stylelint",
	".stylelintignore": "Stylelint Ignore",
	".babelrc": "Babel",
	".babelrc.js": "Babel",
	".babelrc.cjs": "Babel",
	".babelrc.mjs": "Babel",
	".babelrc.json": "Babel",
	"babel.config.js": "Babel",
	"babel.config.cjs": "Babel",
	"babel.config.mjs": "Babel",
	"babel.config.json": "Babel",
	".browserslistrc": "Browserslist",
	"browserslist": "Browserslist",
	"tsconfig.json": "TypeScript Config",
	"tsconfig.build.json": "TypeScript Config",
	"tsconfig.base.json": "TypeScript Config",
	"jsconfig.json": "JavaScript Config",
	".swcrc": "SWC",
	".terserrc": "Terser",
	".postcssrc": "PostCSS",
	".postcssrc.json": "PostCSS",
	".postcssrc.yml": "PostCSS",
	".postcssrc.js": "PostCSS",
	"postcss.config.js": "PostCSS",
	"postcss.config.cjs": "PostCSS",
	"postcss.config.mjs": "PostCSS",
	"tailwind.config.js": "Tailwind CSS",
	"tailwind.config.cjs": "Tailwind CSS",
	"tailwind.config.mjs": "Tailwind CSS",
	"tailwind.config.ts": "Tailwind CSS",
	"vite.config.js": "Vite",
	"vite.config.ts": "Vite",
	"vite.config.mjs": "Vite",
	"vite.config.mts": "Vite",
	"next.config.js": "Next.js",
	"next.config.mjs": "Next.js",
	"next.config.ts": "Next.js",
	"nuxt.config.js": "Nuxt",
	"nuxt.config.ts": "Nuxt",
	"svelte.config.js": "Svelte",
	"svelte.config.mjs": "Svelte",
	"astro.config.js": "Astro",
	"astro.config.mjs": "Astro",
	"astro.config.ts": "Astro",
	"remix.config.js": "Remix",
	"remix.config.mjs": "Remix",
	"gatsby-config.js": "Gatsby",
	"gatsby-config.ts": "Gatsby",
	"angular.json": "Angular",
	"vue.config.js": "Vue CLI",
	"webpack.config.js": "Webpack",
	"webpack.config.ts": "Webpack",
	"webpack.config.cjs": "Webpack",
	"webpack.config.mjs": "Webpack",
	"rollup.config.js": "Rollup",
	"rollup.config.ts": "Rollup",
	"rollup.config.mjs": "Rollup",
	"esbuild.config.js": "esbuild",
	"esbuild.config.mjs": "esbuild",
	"parcel.config.json": "Parcel",
	".parcelrc": "Parcel",
	"turbo.json": "Turborepo",
	"nx.json": "Nx",
	"lerna.json": "Lerna",
	"rush.json": "Rush",
	"pnpm-workspace.yaml": "pnpm Workspace",
	".npmrc": "npm Config",
	".yarnrc": "Yarn Config",
	".yarnrc.yml": "Yarn Config",
	".nvmrc": "nvm",
	".node-version": "Node Version",
	".ruby-version": "Ruby Version",
	".python-version": "Python Version",
	".java-version": "Java Version",
	".tool-versions": "asdf",
	"mise.toml": "mise",
	".mise.toml": "mise",
	"jest.config.js": "Jest",
	"jest.config.ts": "Jest",
	"jest.config.mjs": "Jest",
	"jest.config.cjs": "Jest",
	"jest.config.json": "Jest",
	"jest.setup.js": "Jest Setup",
	"jest.setup.ts": "Jest Setup",
	"vitest.config.js": "Vitest",
	"vitest.config.ts": "Vitest",
	"vitest.config.mjs": "Vitest",
	"vitest.config.mts": "Vitest",
	"playwright.config.js": "Playwright",
	"playwright.config.ts": "Playwright",
	"cypress.json": "Cypress",
	"cypress.config.js": "Cypress",
	"cypress.config.ts": "Cypress",
	"cypress.config.mjs": "Cypress",
	".mocharc.js": "Mocha",
	".mocharc.json": "Mocha",
	".mocharc.yml": "Mocha",
	".mocharc.yaml": "Mocha",
	"karma.conf.js": "Karma",
	"protractor.conf.js": "Protractor",
	"pytest.ini": "pytest",
	"tox.ini": "tox",
	".coveragerc": "Coverage.py",
	"coverage.xml": "Coverage Report",
	"phpunit.xml": "PHPUnit",
	"phpunit.xml.dist": "PHPUnit",
	".rspec": "RSpec",
	"spec_helper.rb": "RSpec",
	"rails_helper.rb": "RSpec Rails",
	"Guardfile": "Guard",
	".pylintrc": "Pylint",
	"pylintrc": "Pylint",
	".flake8": "Flake8",
	".isort.cfg": "isort",
	".mypy.ini": "mypy",
	"mypy.ini": "mypy",
	".bandit": "Bandit",
	".rubocop.yml": "RuboCop",
	".rubocop_todo.yml": "RuboCop Todo",
	".erb_lint.yml": "ERB Lint",
	".standard.yml": "Standard Ruby",
	".reek.yml": "Reek",
	".solhint.json": "Solhint",
	".soliumrc.json": "Solium",
	"phpcs.xml": "PHP_CodeSniffer",
	"phpcs.xml.dist": "PHP_CodeSniffer",
	"phpmd.xml": "PHPMD",
	".php-cs-fixer.php": "PHP CS Fixer",
	".php-cs-fixer.dist.php": "PHP CS Fixer",
	"phpstan.neon": "PHPStan",
	"phpstan.neon.dist": "PHPStan",
	".golangci.yml": "golangci-lint",
	".golangci.yaml": "golangci-lint",
	".markdownlint.json": "markdownlint",
	".markdownlint.yaml": "markdownlint",
	".markdownlint.yml": "markdownlint",
	".markdownlintrc": "markdownlint",
	".yamllint": "yamllint",
	".yamllint.yml": "yamllint",
	".yamllint.yaml": "yamllint",
	".shellcheckrc": "ShellCheck",
	".commitlintrc.json": "commitlint",
	".commitlintrc.yml": "commitlint",
	".commitlintrc.yaml": "commitlint",
	"commitlint.config.js": "commitlint",
	"commitlint.config.cjs": "commitlint",
	"commitlint.config.mjs": "commitlint",
	".cz.json": "Commitizen",
	".czrc": "Commitizen",
	"cz.json": "Commitizen",
	".releaserc": "semantic-release",
	".releaserc.json": "semantic-release",
	".releaserc.yml": "semantic-release",
	".releaserc.yaml": "semantic-release",
	".releaserc.js": "semantic-release",
	"release.config.js": "semantic-release",
	"release.config.cjs": "semantic-release",
	"release.config.mjs": "semantic-release",
	".husky": "Husky",
	".huskyrc": "Husky",
	".huskyrc.json": "Husky",
	".huskyrc.js": "Husky",
	".lintstagedrc": "lint-staged",
	".lintstagedrc.json": "lint-staged",
	".lintstagedrc.yml": "lint-staged",
	".lintstagedrc.yaml": "lint-staged",
	".lintstagedrc.js": "lint-staged",
	"lint-staged.config.js": "lint-staged",
	"lint-staged.config.cjs": "lint-staged",
	"lint-staged.config.mjs": "lint-staged",
	"renovate.json": "Renovate",
	"renovate.json5": "Renovate",
	".renovaterc": "Renovate",
	".renovaterc.json": "Renovate",
	"dependabot.yml": "Dependabot",
	".dependabot/config.yml": "Dependabot",
	".env": "Environment",
	".env.local": "Environment Local",
	".env.development": "Environment Development",
	".env.development.local": "Environment Development Local",
	".env.test": "Environment Test",
	".env.test.local": "Environment Test Local",
	".env.staging": "Environment Staging",
	".env.production": "Environment Production",
	".env.production.local": "Environment Production Local",
	".env.example": "Environment Example",
	".env.sample": "Environment Sample",
	".env.template": "Environment Template",
	".envrc": "direnv",
	"MANIFEST.in": "Manifest",
	"MANIFEST": "Manifest",
	"VERSION": "Version",
	"VERSION.txt": "Version",
	"Makefile.am": "Automake",
	"configure.ac": "Autoconf",
	"configure.in": "Autoconf",
	"config.h.in": "Autoconf Header",
	"aclocal.m4": "Aclocal",
	"Makefile.in": "Makefile Template",
	"install-sh": "Install Script",
	"configure": "Configure Script",
	"config.guess": "Config Guess",
	"config.sub": "Config Sub",
	"ltmain.sh": "Libtool",
	"depcomp": "Depcomp",
	"missing": "Automake Helper",
	"compile": "Automake Helper",
	"ar-lib": "Automake Helper",
	"test-driver": "Automake Helper",
	"INSTALL": "Install Instructions",
	"INSTALL.md": "Install Instructions",
	"INSTALL.txt": "Install Instructions",
}
