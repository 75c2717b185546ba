/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package ops

import (
	"fmt"
	"sync"
)

// DocGroup is the documentation subtree a category is written to.
type DocGroup string

const (
	DocGroupUser      DocGroup = "user"       // end-user reference
	DocGroupPluginAPI DocGroup = "plugin_api" // plugin API reference
)

// Category is one generated documentation category.
type Category struct {
	Name        string
	Group       DocGroup
	Description string
}

// CategoryRegistry keeps documentation categories in registration order.
// That order is the processing order of an export run.
type CategoryRegistry struct {
	mu         sync.RWMutex
	categories []Category
	index      map[string]int
}

var globalCategories = &CategoryRegistry{
	index: make(map[string]int),
}

// GetCategoryRegistry returns the global category registry
func GetCategoryRegistry() *CategoryRegistry {
	return globalCategories
}

// Register adds a category to the registry
func (r *CategoryRegistry) Register(cat Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[cat.Name]; exists {
		return fmt.Errorf("category %s already registered", cat.Name)
	}
	r.index[cat.Name] = len(r.categories)
	r.categories = append(r.categories, cat)
	return nil
}

// Categories returns all categories in registration order.
func (r *CategoryRegistry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// GetCategory returns a category by name.
func (r *CategoryRegistry) GetCategory(name string) (Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// Names returns the category names in registration order.
func (r *CategoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.categories))
	for i, cat := range r.categories {
		names[i] = cat.Name
	}
	return names
}

func init() {
	for _, cat := range []Category{
		{Name: "commands", Group: DocGroupUser, Description: "Commands, one file per plugin"},
		{Name: "options", Group: DocGroupUser, Description: "Configuration options, one file per configuration file"},
		{Name: "irc_colors", Group: DocGroupUser, Description: "IRC color mappings"},
		{Name: "infos", Group: DocGroupPluginAPI, Description: "Infos (string queries)"},
		{Name: "infos_hashtable", Group: DocGroupPluginAPI, Description: "Infos returning hashtables"},
		{Name: "infolists", Group: DocGroupPluginAPI, Description: "Infolists"},
		{Name: "hdata", Group: DocGroupPluginAPI, Description: "Hdata structures"},
		{Name: "completions", Group: DocGroupPluginAPI, Description: "Completion items"},
		{Name: "url_options", Group: DocGroupPluginAPI, Description: "URL transfer options"},
		{Name: "plugins_priority", Group: DocGroupPluginAPI, Description: "Plugin load priorities"},
	} {
		if err := globalCategories.Register(cat); err != nil {
			panic(err)
		}
	}
}
