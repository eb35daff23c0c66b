package oasmodel

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/tree"
)

// Merge strategies of [DocumentConfig].
const (
	MergeOverride = "override"
	MergeDeep     = "deep"
)

// Config is the TOML configuration of an [Assembler].
//
//	servers = ["https://api.example.com"]
//
//	[document]
//	version = "3.1.0"
//	static_file = "openapi.yaml"
//	merge = "deep"
//
//	[info]
//	title = "Pets"
//	version = "1.2.0"
//
//	[profiles]
//	exclude = ["internal"]
type Config struct {
	Document DocumentConfig `toml:"document"`
	Info     InfoConfig     `toml:"info"`
	Servers  []string       `toml:"servers"`
	Profiles ProfileConfig  `toml:"profiles"`
	Output   OutputConfig   `toml:"output"`
}

// DocumentConfig selects the sources and how they are combined.
type DocumentConfig struct {
	Version      string `toml:"version"`
	StaticFile   string `toml:"static_file"`
	Merge        string `toml:"merge"`
	Unmodifiable bool   `toml:"unmodifiable"`
}

// InfoConfig overrides the info object of the assembled document.
type InfoConfig struct {
	Title          string `toml:"title"`
	Version        string `toml:"version"`
	Description    string `toml:"description"`
	TermsOfService string `toml:"terms_of_service"`
	ContactName    string `toml:"contact_name"`
	ContactURL     string `toml:"contact_url"`
	ContactEmail   string `toml:"contact_email"`
	LicenseName    string `toml:"license_name"`
	LicenseURL     string `toml:"license_url"`
}

// ProfileConfig selects operations by their profile extensions.
type ProfileConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// OutputConfig controls how the assembled document is written.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LoadConfig reads a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and checks a TOML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Document.Merge {
	case "", MergeOverride, MergeDeep:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown merge strategy %q", c.Document.Merge)
	}
	if c.Output.Format != "" {
		if _, err := tree.ParseFormat(c.Output.Format); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid output format")
		}
	}
	return nil
}

// OutputFormat returns the configured output format, defaulting to YAML.
func (c *Config) OutputFormat() tree.Format {
	if c == nil || c.Output.Format == "" {
		return tree.YAML
	}
	f, _ := tree.ParseFormat(c.Output.Format)
	return f
}

// apply writes the version, info and server overrides into doc.
func (c *Config) apply(doc *model.OpenAPI) {
	if c.Document.Version != "" {
		doc.SetOpenAPI(c.Document.Version)
	}
	c.Info.apply(doc)
	if len(c.Servers) > 0 {
		servers := make([]*model.Server, len(c.Servers))
		for i, url := range c.Servers {
			servers[i] = model.NewServer().SetURL(url)
		}
		doc.SetServers(servers)
	}
}

func (c InfoConfig) apply(doc *model.OpenAPI) {
	if c == (InfoConfig{}) {
		return
	}
	info := doc.Info()
	if info == nil {
		info = model.NewInfo()
		doc.SetInfo(info)
	}
	set := func(v string, f func(string) *model.Info) {
		if v != "" {
			f(v)
		}
	}
	set(c.Title, info.SetTitle)
	set(c.Version, info.SetVersion)
	set(c.Description, info.SetDescription)
	set(c.TermsOfService, info.SetTermsOfService)

	if c.ContactName != "" || c.ContactURL != "" || c.ContactEmail != "" {
		contact := info.Contact()
		if contact == nil {
			contact = model.NewContact()
			info.SetContact(contact)
		}
		if c.ContactName != "" {
			contact.SetName(c.ContactName)
		}
		if c.ContactURL != "" {
			contact.SetURL(c.ContactURL)
		}
		if c.ContactEmail != "" {
			contact.SetEmail(c.ContactEmail)
		}
	}
	if c.LicenseName != "" || c.LicenseURL != "" {
		license := info.License()
		if license == nil {
			license = model.NewLicense()
			info.SetLicense(license)
		}
		if c.LicenseName != "" {
			license.SetName(c.LicenseName)
		}
		if c.LicenseURL != "" {
			license.SetURL(c.LicenseURL)
		}
	}
}
