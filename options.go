package notesite

import (
	"log/slog"
	"time"
)

// Option configures a Generator.
type Option func(*generatorConfig)

// generatorConfig holds the raw option values. NewGenerator validates and
// resolves them.
type generatorConfig struct {
	logger         *slog.Logger
	now            func() time.Time
	assetPath      string
	template       string
	style          string
	noStyle        bool
	inlineStyle    bool
	titlePolicy    TitlePolicy
	language       string
	linkConvention LinkConvention
	bibliography   string
	citationStyle  string
	citer          Citer
	homeTitle      string
	indexHeading   string
	date           string
	toc            *TOC
}

// Defaults applied by NewGenerator.
const (
	DefaultHomeTitle    = "Home"
	DefaultIndexHeading = "Contents"
	DefaultLanguage     = "en"
	StylesheetName      = "style.css"
	HomepageName        = "index.html"
)

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		logger:         slog.New(slog.DiscardHandler),
		now:            time.Now,
		titlePolicy:    TitleCapitalize,
		language:       DefaultLanguage,
		linkConvention: AliasTarget,
		homeTitle:      DefaultHomeTitle,
		indexHeading:   DefaultIndexHeading,
	}
}

// WithLogger sets the logger for warnings and progress. Default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *generatorConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAssetPath sets a directory searched for templates/{name}.html and
// styles/{name}.css before the embedded assets.
func WithAssetPath(path string) Option {
	return func(c *generatorConfig) {
		c.assetPath = path
	}
}

// WithTemplate selects the page template by name or .html file path.
func WithTemplate(nameOrPath string) Option {
	return func(c *generatorConfig) {
		c.template = nameOrPath
	}
}

// WithStyle selects the stylesheet by name or .css file path.
func WithStyle(nameOrPath string) Option {
	return func(c *generatorConfig) {
		c.style = nameOrPath
	}
}

// WithoutStyle disables the stylesheet entirely.
func WithoutStyle() Option {
	return func(c *generatorConfig) {
		c.noStyle = true
	}
}

// WithInlineStyle embeds the stylesheet in every page instead of writing
// style.css.
func WithInlineStyle() Option {
	return func(c *generatorConfig) {
		c.inlineStyle = true
	}
}

// WithTitlePolicy sets how page titles are derived from file names.
func WithTitlePolicy(p TitlePolicy) Option {
	return func(c *generatorConfig) {
		c.titlePolicy = p
	}
}

// WithLanguage sets the BCP 47 tag used for title casing.
func WithLanguage(tag string) Option {
	return func(c *generatorConfig) {
		c.language = tag
	}
}

// WithLinkConvention sets how [[a|b]] is read.
func WithLinkConvention(conv LinkConvention) Option {
	return func(c *generatorConfig) {
		c.linkConvention = conv
	}
}

// WithBibliography enables citations from a .bib, .json, .yaml or .yml file.
// stylePath may be empty for the built-in style.
func WithBibliography(path, stylePath string) Option {
	return func(c *generatorConfig) {
		c.bibliography = path
		c.citationStyle = stylePath
	}
}

// WithCiter enables citations rendered by citer. It takes precedence over
// WithBibliography.
func WithCiter(citer Citer) Option {
	return func(c *generatorConfig) {
		c.citer = citer
	}
}

// WithHomeTitle sets the title of index.html.
func WithHomeTitle(title string) Option {
	return func(c *generatorConfig) {
		c.homeTitle = title
	}
}

// WithIndexHeading sets the heading above the page list of index.html.
func WithIndexHeading(heading string) Option {
	return func(c *generatorConfig) {
		c.indexHeading = heading
	}
}

// WithDate sets the page date: "auto", "auto:FORMAT", "modified",
// "modified:FORMAT" or a literal value. Empty omits the date.
func WithDate(value string) Option {
	return func(c *generatorConfig) {
		c.date = value
	}
}

// WithTOC adds a table of contents to every page. nil disables it.
func WithTOC(toc *TOC) Option {
	return func(c *generatorConfig) {
		c.toc = toc
	}
}

// WithClock sets the time source used for "auto" dates.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) {
		if now != nil {
			c.now = now
		}
	}
}
