package host

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Plugin flags:
//
//	"c": plugin registers many commands, document all of them (without
//	     this flag only the command named like the plugin is documented)
//	"o": document the options of the plugin's configuration file
var defaultPlugins = map[string]string{
	"sec":        "o",
	"weechat":    "co",
	"alias":      "",
	"aspell":     "o",
	"charset":    "o",
	"exec":       "o",
	"fifo":       "o",
	"irc":        "co",
	"logger":     "o",
	"relay":      "o",
	"script":     "o",
	"perl":       "",
	"python":     "",
	"javascript": "",
	"ruby":       "",
	"lua":        "",
	"tcl":        "",
	"guile":      "",
	"trigger":    "o",
	"xfer":       "co",
}

// Options which are dynamic or per-server and therefore not documented.
var defaultIgnoreOptions = []string{
	`aspell\.dict\..*`,
	`aspell\.option\..*`,
	`charset\.decode\..*`,
	`charset\.encode\..*`,
	`irc\.msgbuffer\..*`,
	`irc\.ctcp\..*`,
	`irc\.ignore\..*`,
	`irc\.server\..*`,
	`jabber\.server\..*`,
	`logger\.level\..*`,
	`logger\.mask\..*`,
	`relay\.port\..*`,
	`trigger\.trigger\..*`,
	`weechat\.palette\..*`,
	`weechat\.proxy\..*`,
	`weechat\.bar\..*`,
	`weechat\.debug\..*`,
	`weechat\.notify\..*`,
}

var defaultIgnoreCompletions = []string{
	`docgen.*`,
	`jabber.*`,
	`weeget.*`,
}

// defaultLocales are the locales exported when neither flags nor
// configuration name any.
var defaultLocales = []string{"en_US", "fr_FR", "it_IT", "de_DE", "ja_JP", "pl_PL"}

// DefaultLocales returns the built-in locale list.
func DefaultLocales() []string {
	out := make([]string, len(defaultLocales))
	copy(out, defaultLocales)
	return out
}

// Rules decides which plugins, commands, options and completions make it
// into the generated documentation.
type Rules struct {
	plugins           map[string]string
	ignoreOptions     *regexp.Regexp
	ignoreCompletions *regexp.Regexp
}

// rulesFile is the on-disk override format. Each present section replaces
// the corresponding built-in list entirely.
type rulesFile struct {
	Plugins           map[string]string `toml:"plugins"`
	IgnoreOptions     []string          `toml:"ignore_options"`
	IgnoreCompletions []string          `toml:"ignore_completions"`
}

// DefaultRules returns the built-in curation rules.
func DefaultRules() *Rules {
	plugins := make(map[string]string, len(defaultPlugins))
	for name, flags := range defaultPlugins {
		plugins[name] = flags
	}
	return &Rules{
		plugins:           plugins,
		ignoreOptions:     regexp.MustCompile(strings.Join(defaultIgnoreOptions, "|")),
		ignoreCompletions: regexp.MustCompile(strings.Join(defaultIgnoreCompletions, "|")),
	}
}

// LoadRules reads a TOML rules file and merges it over the defaults.
// Sections absent from the file keep their built-in values.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rf rulesFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	rules := DefaultRules()
	if rf.Plugins != nil {
		rules.plugins = rf.Plugins
	}
	if rf.IgnoreOptions != nil {
		re, err := compilePatterns(rf.IgnoreOptions)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore_options pattern in %s: %w", path, err)
		}
		rules.ignoreOptions = re
	}
	if rf.IgnoreCompletions != nil {
		re, err := compilePatterns(rf.IgnoreCompletions)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore_completions pattern in %s: %w", path, err)
		}
		rules.ignoreCompletions = re
	}
	return rules, nil
}

func compilePatterns(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	return regexp.Compile(strings.Join(patterns, "|"))
}

// PluginAllowed reports whether the plugin is documented at all.
func (r *Rules) PluginAllowed(plugin string) bool {
	_, ok := r.plugins[plugin]
	return ok
}

// ManyCommands reports whether all commands of the plugin are documented,
// not just the one named like the plugin.
func (r *Rules) ManyCommands(plugin string) bool {
	return strings.Contains(r.plugins[plugin], "c")
}

// WriteOptions reports whether options of the given configuration file
// are documented.
func (r *Rules) WriteOptions(config string) bool {
	flags, ok := r.plugins[config]
	return ok && strings.Contains(flags, "o")
}

// IgnoreOption reports whether the option (as "config.section.name") is
// excluded from the documentation.
func (r *Rules) IgnoreOption(fullName string) bool {
	return r.ignoreOptions != nil && r.ignoreOptions.MatchString(fullName)
}

// IgnoreCompletion reports whether the completion item is excluded from
// the documentation.
func (r *Rules) IgnoreCompletion(item string) bool {
	return r.ignoreCompletions != nil && r.ignoreCompletions.MatchString(item)
}
