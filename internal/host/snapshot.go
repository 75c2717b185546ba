package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the snapshot format version this build understands.
const SnapshotVersion = 1

// snapshotFile is the on-disk snapshot format. YAML and JSON are both
// accepted (JSON parses as YAML). Unknown fields are ignored so snapshots
// from newer clients still load.
type snapshotFile struct {
	Version         int             `yaml:"version" json:"version"`
	LocaleDir       string          `yaml:"localedir" json:"localedir"`
	Commands        []Command       `yaml:"commands" json:"commands"`
	Options         []Option        `yaml:"options" json:"options"`
	Infos           []Info          `yaml:"infos" json:"infos"`
	InfosHashtable  []InfoHashtable `yaml:"infos_hashtable" json:"infos_hashtable"`
	Infolists       []Infolist      `yaml:"infolists" json:"infolists"`
	Hdata           []Hdata         `yaml:"hdata" json:"hdata"`
	Completions     []Completion    `yaml:"completions" json:"completions"`
	URLOptions      []URLOption     `yaml:"url_options" json:"url_options"`
	IRCColors       []IRCColor      `yaml:"irc_colors" json:"irc_colors"`
	PluginsPriority []Plugin        `yaml:"plugins_priority" json:"plugins_priority"`
}

// Snapshot is a Host backed by a metadata snapshot file written by the
// chat client.
type Snapshot struct {
	file snapshotFile
}

// LoadSnapshot reads and parses a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// ParseSnapshot parses snapshot bytes in YAML or JSON form.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (expected %d)", file.Version, SnapshotVersion)
	}
	return &Snapshot{file: file}, nil
}

func (s *Snapshot) Commands() []Command             { return s.file.Commands }
func (s *Snapshot) Options() []Option               { return s.file.Options }
func (s *Snapshot) Infos() []Info                   { return s.file.Infos }
func (s *Snapshot) InfosHashtable() []InfoHashtable { return s.file.InfosHashtable }
func (s *Snapshot) Infolists() []Infolist           { return s.file.Infolists }
func (s *Snapshot) Hdata() []Hdata                  { return s.file.Hdata }
func (s *Snapshot) Completions() []Completion       { return s.file.Completions }
func (s *Snapshot) URLOptions() []URLOption         { return s.file.URLOptions }
func (s *Snapshot) IRCColors() []IRCColor           { return s.file.IRCColors }
func (s *Snapshot) PluginsPriority() []Plugin       { return s.file.PluginsPriority }

// LocaleDir returns the gettext catalog root recorded in the snapshot,
// or "" when the client ships no catalogs.
func (s *Snapshot) LocaleDir() string { return s.file.LocaleDir }
