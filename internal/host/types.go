// Package host describes the chat-client metadata weedoc documents: the
// commands, options, infos, hdata and other hooks a running client exposes.
// The exporter only sees the Host interface; the concrete implementation is
// a snapshot file written by the client (see snapshot.go).
package host

// Command is one command registered by a plugin ("core" commands belong to
// the pseudo-plugin "weechat").
type Command struct {
	Plugin          string `yaml:"plugin" json:"plugin"`
	Name            string `yaml:"name" json:"name"`
	Description     string `yaml:"description" json:"description"`
	Args            string `yaml:"args" json:"args"`
	ArgsDescription string `yaml:"args_description" json:"args_description"`
	Completion      string `yaml:"completion" json:"completion"`
}

// Option is one configuration option. FullName identifies it for curation
// purposes as "config.section.name".
type Option struct {
	Config       string `yaml:"config" json:"config"`
	Section      string `yaml:"section" json:"section"`
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`
	StringValues string `yaml:"string_values" json:"string_values"`
	Default      string `yaml:"default" json:"default"`
	Min          int    `yaml:"min" json:"min"`
	Max          int    `yaml:"max" json:"max"`
	NullAllowed  bool   `yaml:"null_allowed" json:"null_allowed"`
	Description  string `yaml:"description" json:"description"`
}

// FullName returns the option identifier used by ignore rules.
func (o Option) FullName() string {
	return o.Config + "." + o.Section + "." + o.Name
}

// Info is one info hook (string query).
type Info struct {
	Plugin          string `yaml:"plugin" json:"plugin"`
	Name            string `yaml:"name" json:"name"`
	Description     string `yaml:"description" json:"description"`
	ArgsDescription string `yaml:"args_description" json:"args_description"`
}

// InfoHashtable is one info hook taking and returning a hashtable.
type InfoHashtable struct {
	Plugin            string `yaml:"plugin" json:"plugin"`
	Name              string `yaml:"name" json:"name"`
	Description       string `yaml:"description" json:"description"`
	ArgsDescription   string `yaml:"args_description" json:"args_description"`
	OutputDescription string `yaml:"output_description" json:"output_description"`
}

// Infolist is one infolist hook.
type Infolist struct {
	Plugin             string `yaml:"plugin" json:"plugin"`
	Name               string `yaml:"name" json:"name"`
	Description        string `yaml:"description" json:"description"`
	PointerDescription string `yaml:"pointer_description" json:"pointer_description"`
	ArgsDescription    string `yaml:"args_description" json:"args_description"`
}

// HdataVar is one variable of an hdata structure. Offset fixes the
// documented order.
type HdataVar struct {
	Name          string `yaml:"name" json:"name"`
	Type          string `yaml:"type" json:"type"`
	Offset        int    `yaml:"offset" json:"offset"`
	ArraySize     string `yaml:"array_size" json:"array_size"`
	Hdata         string `yaml:"hdata" json:"hdata"`
	UpdateAllowed bool   `yaml:"update_allowed" json:"update_allowed"`
}

// Hdata is one hdata structure exposed to plugins.
type Hdata struct {
	Plugin        string     `yaml:"plugin" json:"plugin"`
	Name          string     `yaml:"name" json:"name"`
	Description   string     `yaml:"description" json:"description"`
	Vars          []HdataVar `yaml:"vars" json:"vars"`
	CreateAllowed bool       `yaml:"create_allowed" json:"create_allowed"`
	DeleteAllowed bool       `yaml:"delete_allowed" json:"delete_allowed"`
	Lists         []string   `yaml:"lists" json:"lists"`
}

// Completion is one completion item hook.
type Completion struct {
	Plugin      string `yaml:"plugin" json:"plugin"`
	Item        string `yaml:"item" json:"item"`
	Description string `yaml:"description" json:"description"`
}

// URLOption is one URL transfer option. Order in the snapshot is
// meaningful and preserved in output.
type URLOption struct {
	Name      string `yaml:"name" json:"name"`
	Option    int    `yaml:"option" json:"option"`
	Type      string `yaml:"type" json:"type"`
	Constants string `yaml:"constants" json:"constants"`
}

// IRCColor maps one IRC color code to a client color. Order in the
// snapshot is meaningful and preserved in output.
type IRCColor struct {
	IRC     string `yaml:"irc" json:"irc"`
	WeeChat string `yaml:"weechat" json:"weechat"`
}

// Plugin is one loaded plugin with its load priority.
type Plugin struct {
	Name     string `yaml:"name" json:"name"`
	Priority int    `yaml:"priority" json:"priority"`
}

// Host provides read-only access to the metadata of a chat client.
// Implementations must return the same data for the lifetime of an
// export run.
type Host interface {
	Commands() []Command
	Options() []Option
	Infos() []Info
	InfosHashtable() []InfoHashtable
	Infolists() []Infolist
	Hdata() []Hdata
	Completions() []Completion
	URLOptions() []URLOption
	IRCColors() []IRCColor
	PluginsPriority() []Plugin

	// LocaleDir is the gettext catalog root of the host, or "" when the
	// host ships no catalogs.
	LocaleDir() string
}
