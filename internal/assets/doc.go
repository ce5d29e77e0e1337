// Package assets provides the page templates and stylesheets of a generated
// site.
//
// Assets come in two kinds, Style and Template, each stored as
// {dir}/{name}{ext}:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # copied to the site as style.css
//	└── templates/
//	    └── {name}.html     # html/template page layouts
//
// EmbeddedLoader serves the built-in assets. DirLoader serves a directory on
// disk through an os.Root, so neither a crafted name nor a symlink can reach
// outside it. Resolver tries the directory first and falls back to the
// built-in asset when the name is unknown there, which lets a site override
// the page template and keep the default stylesheet.
package assets
