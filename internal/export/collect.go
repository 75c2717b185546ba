package export

import (
	"sort"

	"github.com/fulmenhq/weedoc/internal/host"
)

// commandGroup is the documented commands of one plugin, sorted by name.
// Each group becomes one file in the user tree.
type commandGroup struct {
	plugin   string
	commands []host.Command
}

// optionGroup is the documented options of one configuration file,
// sorted by section then name. Each group becomes one file in the user
// tree.
type optionGroup struct {
	config  string
	options []host.Option
}

// priorityGroup is the set of plugin names sharing one load priority.
type priorityGroup struct {
	priority int
	names    []string
}

// collection holds the curated, ordered snapshot data an export run
// renders. Collecting once up front keeps every locale's output built
// from identical input.
type collection struct {
	commands       []commandGroup
	options        []optionGroup
	infos          []host.Info
	infosHashtable []host.InfoHashtable
	infolists      []host.Infolist
	hdata          []host.Hdata
	completions    []host.Completion
	urlOptions     []host.URLOption
	ircColors      []host.IRCColor
	plugins        []priorityGroup
}

func collect(h host.Host, rules *host.Rules) *collection {
	c := &collection{}
	c.commands = collectCommands(h.Commands(), rules)
	c.options = collectOptions(h.Options(), rules)

	c.infos = append(c.infos, h.Infos()...)
	sort.Slice(c.infos, func(i, j int) bool {
		if c.infos[i].Plugin != c.infos[j].Plugin {
			return c.infos[i].Plugin < c.infos[j].Plugin
		}
		return c.infos[i].Name < c.infos[j].Name
	})

	c.infosHashtable = append(c.infosHashtable, h.InfosHashtable()...)
	sort.Slice(c.infosHashtable, func(i, j int) bool {
		if c.infosHashtable[i].Plugin != c.infosHashtable[j].Plugin {
			return c.infosHashtable[i].Plugin < c.infosHashtable[j].Plugin
		}
		return c.infosHashtable[i].Name < c.infosHashtable[j].Name
	})

	c.infolists = append(c.infolists, h.Infolists()...)
	sort.Slice(c.infolists, func(i, j int) bool {
		if c.infolists[i].Plugin != c.infolists[j].Plugin {
			return c.infolists[i].Plugin < c.infolists[j].Plugin
		}
		return c.infolists[i].Name < c.infolists[j].Name
	})

	c.hdata = collectHdata(h.Hdata())
	c.completions = collectCompletions(h.Completions(), rules)

	// URL options and IRC colors keep their snapshot order
	c.urlOptions = append(c.urlOptions, h.URLOptions()...)
	c.ircColors = append(c.ircColors, h.IRCColors()...)

	c.plugins = collectPlugins(h.PluginsPriority())
	return c
}

// collectCommands keeps commands of known plugins. Unless the plugin is
// flagged as documenting all its commands, only the command named like
// the plugin survives.
func collectCommands(commands []host.Command, rules *host.Rules) []commandGroup {
	byPlugin := make(map[string][]host.Command)
	for _, cmd := range commands {
		if !rules.PluginAllowed(cmd.Plugin) {
			continue
		}
		if cmd.Name != cmd.Plugin && !rules.ManyCommands(cmd.Plugin) {
			continue
		}
		byPlugin[cmd.Plugin] = append(byPlugin[cmd.Plugin], cmd)
	}

	plugins := make([]string, 0, len(byPlugin))
	for plugin := range byPlugin {
		plugins = append(plugins, plugin)
	}
	sort.Strings(plugins)

	groups := make([]commandGroup, 0, len(plugins))
	for _, plugin := range plugins {
		cmds := byPlugin[plugin]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		groups = append(groups, commandGroup{plugin: plugin, commands: cmds})
	}
	return groups
}

func collectOptions(options []host.Option, rules *host.Rules) []optionGroup {
	byConfig := make(map[string][]host.Option)
	for _, opt := range options {
		if !rules.WriteOptions(opt.Config) {
			continue
		}
		if rules.IgnoreOption(opt.FullName()) {
			continue
		}
		byConfig[opt.Config] = append(byConfig[opt.Config], opt)
	}

	configs := make([]string, 0, len(byConfig))
	for config := range byConfig {
		configs = append(configs, config)
	}
	sort.Strings(configs)

	groups := make([]optionGroup, 0, len(configs))
	for _, config := range configs {
		opts := byConfig[config]
		sort.Slice(opts, func(i, j int) bool {
			if opts[i].Section != opts[j].Section {
				return opts[i].Section < opts[j].Section
			}
			return opts[i].Name < opts[j].Name
		})
		groups = append(groups, optionGroup{config: config, options: opts})
	}
	return groups
}

// collectHdata sorts structures by plugin and name, variables by their
// offset and list names alphabetically. The input slices are copied, not
// reordered in place.
func collectHdata(hdata []host.Hdata) []host.Hdata {
	out := make([]host.Hdata, len(hdata))
	copy(out, hdata)
	for i := range out {
		vars := make([]host.HdataVar, len(out[i].Vars))
		copy(vars, out[i].Vars)
		sort.SliceStable(vars, func(a, b int) bool { return vars[a].Offset < vars[b].Offset })
		out[i].Vars = vars

		lists := make([]string, len(out[i].Lists))
		copy(lists, out[i].Lists)
		sort.Strings(lists)
		out[i].Lists = lists
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Plugin != out[j].Plugin {
			return out[i].Plugin < out[j].Plugin
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func collectCompletions(completions []host.Completion, rules *host.Rules) []host.Completion {
	out := make([]host.Completion, 0, len(completions))
	for _, comp := range completions {
		if rules.IgnoreCompletion(comp.Item) {
			continue
		}
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Plugin != out[j].Plugin {
			return out[i].Plugin < out[j].Plugin
		}
		return out[i].Item < out[j].Item
	})
	return out
}

// collectPlugins groups plugins by load priority, highest first, names
// within a priority sorted alphabetically.
func collectPlugins(plugins []host.Plugin) []priorityGroup {
	byPriority := make(map[int][]string)
	for _, p := range plugins {
		byPriority[p.Priority] = append(byPriority[p.Priority], p.Name)
	}

	priorities := make([]int, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(priorities)))

	groups := make([]priorityGroup, 0, len(priorities))
	for _, priority := range priorities {
		names := byPriority[priority]
		sort.Strings(names)
		groups = append(groups, priorityGroup{priority: priority, names: names})
	}
	return groups
}
