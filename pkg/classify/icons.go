package classify

// Glyphs come from the Nerd Fonts private-use area; a patched font is needed to
// see them.

// iconsByName is keyed on the exact entry name.
var iconsByName = map[string]string{
	".Xauthority":        "\ue615",
	".Xmodmap":           "\ue615",
	".Xprofile":          "\ue615",
	".atom":              "\ue764",
	".bash_logout":       "\ue615",
	".bash_profile":      "\ue615",
	".bashrc":            "\uf489",
	".bpython_history":   "\ue606",
	".cargo":             "\ue7a8",
	".clang-format":      "\ue615",
	".config":            "\ue5fc",
	".dbus":              "\uf013",
	".doom.d":            "\ue779",
	".ds_store":          "\uf179",
	".editorconfig":      "\ue615",
	".emacs.d":           "\ue779",
	".env":               "\uf462",
	".eslintrc.js":       "\uf462",
	".eslintrc.json":     "\uf462",
	".eslintrc.yml":      "\uf462",
	".git":               "\ue5fb",
	".git-credentials":   "\ue60a",
	".gitattributes":     "\uf1d3",
	".gitconfig":         "\uf1d3",
	".github":            "\ue5fd",
	".gitignore":         "\uf1d3",
	".gitlab-ci.yml":     "\uf296",
	".gitmodules":        "\uf1d3",
	".gnupg":             "\uf023",
	".htaccess":          "\ue615",
	".htpasswd":          "\ue615",
	".idlerc":            "\ue235",
	".inputrc":           "\ue615",
	".jupyter":           "\ue606",
	".kshrc":             "\uf489",
	".lynxrc":            "\ue615",
	".mailcap":           "\uf6ef",
	".mozilla":           "\ue786",
	".mutt":              "\ue615",
	".node_repl_history": "\ue718",
	".npm":               "\ue5fa",
	".pki":               "\uf023",
	".profile":           "\uf68c",
	".python_history":    "\ue606",
	".release.toml":      "\ue7a8",
	".rustup":            "\ue7a8",
	".rvm":               "\ue21e",
	".shellcheckrc":      "\ue615",
	".sqlite_history":    "\ue7c4",
	".ssh":               "\uf023",
	".trash":             "\uf1f8",
	".vim":               "\ue62b",
	".viminfo":           "\ue62b",
	".vimrc":             "\ue62b",
	".vscode":            "\ue70c",
	".wgetrc":            "\ue615",
	".xauthority":        "\ue615",
	".xinitrc":           "\ue615",
	".xmodmap":           "\ue615",
	".xprofile":          "\ue615",
	".xresources":        "\ue615",
	".zsh_history":       "\ue615",
	".zshrc":             "\uf489",
	"__pycache__":        "\uf81f",
	"a.out":              "\uf489",
	"api":                "\uf98c",
	"authorized_keys":    "\ue60a",
	"backups":            "\uf56e",
	"bin":                "\ue5fc",
	"bspwmrc":            "\ue615",
	"cargo.lock":         "\ue7a8",
	"cargo.toml":         "\ue7a8",
	"changelog":          "\ue609",
	"composer.json":      "\ue608",
	"conf.d":             "\ue5fc",
	"config":             "\ue5fc",
	"config.ac":          "\ue615",
	"config.el":          "\ue779",
	"config.mk":          "\ue615",
	"contributing":       "\ue60a",
	"copyright":          "\ue60a",
	"cron.d":             "\ue5fc",
	"cron.daily":         "\ue5fc",
	"cron.hourly":        "\ue5fc",
	"cron.monthly":       "\ue5fc",
	"cron.weekly":        "\ue5fc",
	"crontab":            "\ue615",
	"crypttab":           "\ue615",
	"css":                "\ue749",
	"custom.el":          "\ue779",
	"desktop":            "\uf108",
	"doc":                "\uf02d",
	"docker-compose.yml": "\uf308",
	"dockerfile":         "\uf308",
	"documents":          "\uf02d",
	"downloads":          "\uf498",
	"etc":                "\ue5fc",
	"favicon.ico":        "\uf005",
	"favicons":           "\uf005",
	"fstab":              "\uf1c0",
	"gitignore_global":   "\uf1d3",
	"gradle":             "\ue70e",
	"group":              "\ue615",
	"gruntfile.coffee":   "\ue611",
	"gruntfile.js":       "\ue611",
	"gruntfile.ls":       "\ue611",
	"gshadow":            "\ue615",
	"gulpfile.coffee":    "\ue610",
	"gulpfile.js":        "\ue610",
	"gulpfile.ls":        "\ue610",
	"hidden":             "\uf023",
	"home":               "\uf015",
	"hostname":           "\ue615",
	"hosts":              "\uf502",
	"htoprc":             "\ue615",
	"img":                "\uf1c5",
	"include":            "\ue5fc",
	"init.el":            "\ue779",
	"inputrc":            "\ue615",
	"js":                 "\ue74e",
	"kbuild":             "\ue615",
	"kconfig":            "\ue615",
	"known_hosts":        "\ue60a",
	"lib":                "\uf121",
	"lib64":              "\uf121",
	"license":            "\ue60a",
	"license.md":         "\ue60a",
	"license.txt":        "\ue60a",
	"licenses":           "\ue60a",
	"localized":          "\uf179",
	"lsb-release":        "\ue615",
	"mail":               "\uf6ef",
	"maintainers":        "\ue60a",
	"makefile":           "\ue615",
	"makefile.ac":        "\ue615",
	"manifest":           "\uf292",
	"metadata":           "\ue5fc",
	"metadata.xml":       "\uf462",
	"mime.types":         "\ufb44",
	"module.symvers":     "\uf471",
	"music":              "\uf025",
	"muttrc":             "\ue615",
	"netlify.toml":       "\uf233",
	"node_modules":       "\ue5fa",
	"npmignore":          "\ue71e",
	"nvim":               "\ue62b",
	"os-release":         "\ue615",
	"package-lock.json":  "\ue718",
	"package.json":       "\ue718",
	"packages.el":        "\ue779",
	"passwd":             "\uf023",
	"pictures":           "\uf03e",
	"pkgbuild":           "\uf303",
	"portage":            "\ue5fc",
	"profile":            "\ue615",
	"public":             "\uf415",
	"rc.lua":             "\ue615",
	"readme":             "\ue609",
	"requirements.txt":   "\uf81f",
	"robots.txt":         "\ufba7",
	"root":               "\uf023",
	"rubydoc":            "\ue73b",
	"runtime.txt":        "\uf81f",
	"sass":               "\ue603",
	"sbin":               "\ue5fc",
	"scripts":            "\uf489",
	"scss":               "\ue603",
	"shadow":             "\ue615",
	"share":              "\uf064",
	"shells":             "\ue615",
	"src":                "\uf121",
	"styles":             "\ue749",
	"sudoers":            "\uf023",
	"sxhkdrc":            "\ue615",
	"tigrc":              "\ue615",
	"tox.ini":            "\uf81f",
	"ts":                 "\ue628",
	"unlicense":          "\ue60a",
	"url":                "\uf0ac",
	"user-dirs.dirs":     "\ue5fc",
	"vagrantfile":        "\ue615",
	"venv":               "\uf81f",
	"videos":             "\uf03d",
	"vim":                "\ue62b",
	"vimrc":              "\ue62b",
	"webpack.config.js":  "\ufc29",
	"wgetrc":             "\ue615",
	"xbps.d":             "\ue5fc",
	"xmonad.hs":          "\ue615",
	"xorg.conf.d":        "\ue5fc",
	"zathurarc":          "\ue615",
}

// iconsByExtension is keyed on the lowercase extension without its dot.
var iconsByExtension = map[string]string{
	"1":               "\uf02d",
	"2":               "\uf02d",
	"3":               "\uf02d",
	"4":               "\uf02d",
	"5":               "\uf02d",
	"6":               "\uf02d",
	"7":               "\uf02d",
	"7z":              "\uf410",
	"8":               "\uf02d",
	"a":               "\ue624",
	"ai":              "\ue7b4",
	"ape":             "\uf001",
	"apk":             "\ue70e",
	"asc":             "\uf023",
	"asm":             "\uf471",
	"asp":             "\uf121",
	"avi":             "\uf008",
	"avro":            "\ue60b",
	"awk":             "\uf489",
	"bak":             "\uf56e",
	"bash":            "\uf489",
	"bash_history":    "\uf489",
	"bash_profile":    "\uf489",
	"bashrc":          "\uf489",
	"bat":             "\uf17a",
	"bin":             "\uf489",
	"bio":             "\uf910",
	"bmp":             "\uf1c5",
	"bz2":             "\uf410",
	"c":               "\ue61e",
	"c++":             "\ue61d",
	"cc":              "\ue61d",
	"cfg":             "\ue615",
	"cl":              "\uf671",
	"class":           "\ue738",
	"clj":             "\ue768",
	"cljs":            "\ue76a",
	"cls":             "\ue600",
	"coffee":          "\uf0f4",
	"conf":            "\ue615",
	"cp":              "\ue61d",
	"cpp":             "\ue61d",
	"cs":              "\uf81a",
	"csh":             "\uf489",
	"cshtml":          "\uf1fa",
	"csproj":          "\uf81a",
	"css":             "\ue749",
	"csv":             "\uf1c3",
	"csx":             "\uf81a",
	"cue":             "\uf001",
	"cxx":             "\ue61d",
	"dart":            "\ue798",
	"dat":             "\uf1c0",
	"db":              "\uf1c0",
	"deb":             "\uf187",
	"desktop":         "\uf108",
	"diff":            "\ue728",
	"dll":             "\uf17a",
	"doc":             "\uf1c2",
	"dockerfile":      "\uf308",
	"docx":            "\uf1c2",
	"ds_store":        "\uf179",
	"dump":            "\uf1c0",
	"ebook":           "\ue28b",
	"ebuild":          "\uf30d",
	"eclass":          "\uf30d",
	"editorconfig":    "\ue615",
	"ejs":             "\ue618",
	"el":              "\uf671",
	"elc":             "\uf671",
	"elf":             "\uf489",
	"elm":             "\ue62c",
	"env":             "\uf462",
	"eot":             "\uf031",
	"epub":            "\ue28a",
	"erb":             "\ue73b",
	"erl":             "\ue7b1",
	"ex":              "\ue62d",
	"exe":             "\uf17a",
	"exs":             "\ue62d",
	"fish":            "\uf489",
	"flac":            "\uf001",
	"flv":             "\uf008",
	"font":            "\uf031",
	"fpl":             "\uf910",
	"fs":              "\ue7a7",
	"fsi":             "\ue7a7",
	"fsx":             "\ue7a7",
	"gdoc":            "\uf1c2",
	"gemfile":         "\ue21e",
	"gemspec":         "\ue21e",
	"gform":           "\uf298",
	"gif":             "\uf1c5",
	"git":             "\uf1d3",
	"go":              "\ue627",
	"gradle":          "\ue70e",
	"gsheet":          "\uf1c3",
	"gslides":         "\uf1c4",
	"guardfile":       "\ue21e",
	"gz":              "\uf410",
	"h":               "\uf0fd",
	"hbs":             "\ue60f",
	"heic":            "\uf1c5",
	"heif":            "\uf1c5",
	"heix":            "\uf1c5",
	"hh":              "\uf0fd",
	"hpp":             "\uf0fd",
	"hs":              "\ue777",
	"htm":             "\uf13b",
	"html":            "\uf13b",
	"hxx":             "\uf0fd",
	"ico":             "\uf1c5",
	"image":           "\uf1c5",
	"img":             "\uf1c0",
	"iml":             "\ue7b5",
	"info":            "\ue795",
	"ini":             "\ue615",
	"ipynb":           "\ue606",
	"iso":             "\uf1c0",
	"j2":              "\ue000",
	"jar":             "\ue738",
	"java":            "\ue738",
	"jinja":           "\ue000",
	"jl":              "\ue624",
	"jpeg":            "\uf1c5",
	"jpg":             "\uf1c5",
	"js":              "\ue74e",
	"json":            "\ue60b",
	"jsonc":           "\ue60b",
	"jsx":             "\ue7ba",
	"key":             "\ue60a",
	"ksh":             "\uf489",
	"kt":              "\ue634",
	"kts":             "\ue634",
	"ld":              "\ue624",
	"ldb":             "\uf1c0",
	"less":            "\ue758",
	"lhs":             "\ue777",
	"license":         "\ue60a",
	"lisp":            "\uf671",
	"list":            "\uf03a",
	"localized":       "\uf179",
	"lock":            "\uf023",
	"log":             "\uf18d",
	"lss":             "\ue749",
	"lua":             "\ue620",
	"lz":              "\uf410",
	"m3u":             "\uf910",
	"m3u8":            "\uf910",
	"m4a":             "\uf001",
	"m4v":             "\uf008",
	"magnet":          "\uf076",
	"man":             "\uf02d",
	"markdown":        "\ue609",
	"md":              "\ue609",
	"mjs":             "\ue74e",
	"mk":              "\uf085",
	"mkd":             "\ue609",
	"mkv":             "\uf008",
	"mobi":            "\ue28b",
	"mov":             "\uf008",
	"mp3":             "\uf001",
	"mp4":             "\uf008",
	"msi":             "\uf17a",
	"mustache":        "\ue60f",
	"nix":             "\uf313",
	"npmignore":       "\ue71e",
	"o":               "\ue624",
	"ogg":             "\uf001",
	"ogv":             "\uf008",
	"old":             "\uf56e",
	"opus":            "\uf001",
	"orig":            "\uf56e",
	"otf":             "\uf031",
	"pdf":             "\uf1c1",
	"pem":             "\uf805",
	"phar":            "\ue608",
	"php":             "\ue608",
	"pkg":             "\uf187",
	"pl":              "\ue769",
	"plist":           "\uf302",
	"pls":             "\uf910",
	"pm":              "\ue769",
	"png":             "\uf1c5",
	"ppt":             "\uf1c4",
	"pptx":            "\uf1c4",
	"procfile":        "\ue21e",
	"properties":      "\ue60b",
	"ps1":             "\uf489",
	"psd":             "\ue7b8",
	"pub":             "\ue60a",
	"pxm":             "\uf1c5",
	"py":              "\ue606",
	"pyc":             "\ue606",
	"r":               "\ufcd2",
	"rakefile":        "\ue21e",
	"rar":             "\uf410",
	"razor":           "\uf1fa",
	"rb":              "\ue21e",
	"rdata":           "\ufcd2",
	"rdb":             "\ue76d",
	"rdoc":            "\ue609",
	"rds":             "\ufcd2",
	"readme":          "\ue609",
	"rl":              "\uf11c",
	"rlib":            "\ue7a8",
	"rmd":             "\ue609",
	"rpm":             "\uf187",
	"rproj":           "\ufac5",
	"rs":              "\ue7a8",
	"rspec":           "\ue21e",
	"rspec_parallel":  "\ue21e",
	"rspec_status":    "\ue21e",
	"rss":             "\uf09e",
	"rtf":             "\uf15c",
	"ru":              "\ue21e",
	"rubydoc":         "\ue73b",
	"s":               "\uf471",
	"sass":            "\ue603",
	"scala":           "\ue737",
	"scpt":            "\uf302",
	"scss":            "\ue603",
	"sh":              "\uf489",
	"shell":           "\uf489",
	"sig":             "\ue60a",
	"slim":            "\ue73b",
	"sln":             "\ue70c",
	"so":              "\ue624",
	"sql":             "\uf1c0",
	"sqlite3":         "\ue7c4",
	"srt":             "\uf02d",
	"styl":            "\ue600",
	"stylus":          "\ue600",
	"sub":             "\uf02d",
	"sublime-package": "\ue7aa",
	"sublime-session": "\ue7aa",
	"svg":             "\uf1c5",
	"swift":           "\ue755",
	"swp":             "\ue62b",
	"sym":             "\ue624",
	"t":               "\ue769",
	"tar":             "\uf410",
	"tex":             "\ue600",
	"tgz":             "\uf410",
	"tiff":            "\uf1c5",
	"toml":            "\ue60b",
	"torrent":         "\uf98c",
	"trash":           "\uf1f8",
	"ts":              "\ue628",
	"tsx":             "\ue7ba",
	"ttc":             "\uf031",
	"ttf":             "\uf031",
	"twig":            "\ue61c",
	"txt":             "\uf15c",
	"video":           "\uf008",
	"vim":             "\ue62b",
	"vlc":             "\uf910",
	"vue":             "\ufd42",
	"wav":             "\uf001",
	"webm":            "\uf008",
	"webp":            "\uf1c5",
	"windows":         "\uf17a",
	"wma":             "\uf001",
	"wmv":             "\uf008",
	"woff":            "\uf031",
	"woff2":           "\uf031",
	"wpl":             "\uf910",
	"xbps":            "\uf187",
	"xcf":             "\uf1c5",
	"xls":             "\uf1c3",
	"xlsx":            "\uf1c3",
	"xml":             "\uf121",
	"xul":             "\uf269",
	"xz":              "\uf410",
	"yaml":            "\ue60b",
	"yml":             "\ue60b",
	"zip":             "\uf410",
	"zsh":             "\uf489",
	"zsh-theme":       "\uf489",
	"zshrc":           "\uf489",
	"zst":             "\uf410",
}
