/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package ops

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

// CommandGroup represents the operational classification of commands
type CommandGroup string

const (
	GroupSupport CommandGroup = "support" // version, locales, help
	GroupExport  CommandGroup = "export"  // export, snapshot handling
)

// CommandRegistration represents a registered command with its classification
type CommandRegistration struct {
	Name        string
	Group       CommandGroup
	Command     *cobra.Command
	Description string
}

// Registry classifies the CLI commands. Grouped help listings come out
// in registration order, like the category registry.
type Registry struct {
	mu    sync.RWMutex
	order []*CommandRegistration
	index map[string]*CommandRegistration
}

func newRegistry() *Registry {
	return &Registry{index: make(map[string]*CommandRegistration)}
}

var globalRegistry = newRegistry()

// GetRegistry returns the global command registry
func GetRegistry() *Registry {
	return globalRegistry
}

// RegisterCommand registers a command with its operational classification
func RegisterCommand(name string, group CommandGroup, cmd *cobra.Command, description string) error {
	return GetRegistry().Register(name, group, cmd, description)
}

// Register adds a command to the registry
func (r *Registry) Register(name string, group CommandGroup, cmd *cobra.Command, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	reg := &CommandRegistration{
		Name:        name,
		Group:       group,
		Command:     cmd,
		Description: description,
	}
	r.index[name] = reg
	r.order = append(r.order, reg)
	return nil
}

// GetCommand returns a registered command by name
func (r *Registry) GetCommand(name string) (*CommandRegistration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, exists := r.index[name]
	return reg, exists
}

// GetCommandsByGroup returns the commands of one group in registration
// order.
func (r *Registry) GetCommandsByGroup(group CommandGroup) []*CommandRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*CommandRegistration
	for _, reg := range r.order {
		if reg.Group == group {
			out = append(out, reg)
		}
	}
	return out
}

// GetExportCommands returns all commands classified as "export" operations
func (r *Registry) GetExportCommands() []*CommandRegistration {
	return r.GetCommandsByGroup(GroupExport)
}

// GetAllCommands returns all registered commands
func (r *Registry) GetAllCommands() map[string]*CommandRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*CommandRegistration, len(r.index))
	for name, reg := range r.index {
		result[name] = reg
	}
	return result
}

// ListGroups returns all command groups and their command counts
func (r *Registry) ListGroups() map[CommandGroup]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[CommandGroup]int)
	for _, reg := range r.order {
		result[reg.Group]++
	}
	return result
}
