package export

import (
	"fmt"
	"strings"

	"github.com/fulmenhq/weedoc/internal/i18n"
	"github.com/fulmenhq/weedoc/internal/ops"
	billy "github.com/go-git/go-billy/v5"
	"github.com/mattn/go-runewidth"
)

// renderContext carries everything one category render needs for one
// locale.
type renderContext struct {
	fs       billy.Filesystem
	dir      string // locale documentation root, e.g. "fr/autogen"
	tr       i18n.Translator
	counters *RunCounters
	data     *collection
}

type renderFunc func(ctx *renderContext, cat ops.Category) error

// renderers maps category names to their render functions. Every
// registered category must have one.
var renderers = map[string]renderFunc{
	"commands":         renderCommands,
	"options":          renderOptions,
	"irc_colors":       renderIRCColors,
	"infos":            renderInfos,
	"infos_hashtable":  renderInfosHashtable,
	"infolists":        renderInfolists,
	"hdata":            renderHdata,
	"completions":      renderCompletions,
	"url_options":      renderURLOptions,
	"plugins_priority": renderPluginsPriority,
}

// escape escapes the AsciiDoc table cell separator.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func (ctx *renderContext) groupDir(cat ops.Category) string {
	return ctx.fs.Join(ctx.dir, string(cat.Group))
}

func (ctx *renderContext) newWriter(cat ops.Category, name string) (*DocWriter, error) {
	w, err := NewDocWriter(ctx.fs, ctx.groupDir(cat), name)
	if err != nil {
		return nil, err
	}
	w.WriteHeader()
	return w, nil
}

// renderCommands writes one file per plugin with all its documented
// commands.
func renderCommands(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	for _, group := range ctx.data.commands {
		w, err := ctx.newWriter(cat, group.plugin+"_commands.asciidoc")
		if err != nil {
			return err
		}
		for i, cmd := range group.commands {
			if i > 0 {
				w.WriteString("\n")
			}
			w.Writef("[[command_%s_%s]]\n", group.plugin, cmd.Name)
			w.Writef("[command]*`%s`* %s::\n\n", cmd.Name, tr(cmd.Description))
			w.WriteString("----\n")
			if args := tr(cmd.Args); args != "" {
				prefix := "/" + cmd.Name + "  "
				for _, format := range strings.Split(args, " || ") {
					w.WriteString(prefix + format + "\n")
					prefix = strings.Repeat(" ", runewidth.StringWidth(prefix))
				}
			}
			if argsDesc := tr(cmd.ArgsDescription); argsDesc != "" {
				w.WriteString("\n")
				for _, line := range strings.Split(argsDesc, "\n") {
					w.WriteString(line + "\n")
				}
			}
			w.WriteString("----\n")
		}
		if _, err := w.Finalize(cat.Name, ctx.counters); err != nil {
			return err
		}
	}
	return nil
}

// colorValues is the source string describing valid color option values.
const colorValues = `a WeeChat color name (default, black, (dark)gray, white, (light)red, (light)green, brown, yellow, (light)blue, (light)magenta, (light)cyan), a terminal color number or an alias; attributes are allowed before color (for text color only, not background): "*" for bold, "!" for reverse, "/" for italic, "_" for underline`

// renderOptions writes one file per configuration file with all its
// documented options.
func renderOptions(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	for _, group := range ctx.data.options {
		w, err := ctx.newWriter(cat, group.config+"_options.asciidoc")
		if err != nil {
			return err
		}
		for i, opt := range group.options {
			if i > 0 {
				w.WriteString("\n")
			}

			defaultValue := opt.Default
			var values string
			switch opt.Type {
			case "boolean":
				values = "on, off"
			case "integer":
				if opt.StringValues != "" {
					values = strings.ReplaceAll(opt.StringValues, "|", ", ")
				} else {
					values = fmt.Sprintf("%d .. %d", opt.Min, opt.Max)
				}
			case "string":
				switch {
				case opt.Max <= 0:
					values = tr("any string")
				case opt.Max == 1:
					values = tr("any char")
				default:
					values = fmt.Sprintf("%s (%s: %d)", tr("any string"), tr("max chars"), opt.Max)
				}
				defaultValue = `"` + strings.ReplaceAll(defaultValue, `"`, `\"`) + `"`
			case "color":
				values = tr(colorValues)
			}

			w.Writef("* [[option_%s.%s.%s]] *%s.%s.%s*\n",
				opt.Config, opt.Section, opt.Name,
				opt.Config, opt.Section, opt.Name)
			w.Writef("** %s: `%s`\n", tr("description"), tr(opt.Description))
			w.Writef("** %s: %s\n", tr("type"), tr(opt.Type))
			w.Writef("** %s: %s (%s: `%s`)\n", tr("values"), values, tr("default value"), defaultValue)
			if opt.NullAllowed {
				w.Writef("** %s\n", tr("undefined value allowed (null)"))
			}
		}
		if _, err := w.Finalize(cat.Name, ctx.counters); err != nil {
			return err
		}
	}
	return nil
}

// renderIRCColors writes the IRC color mapping table, keeping the
// snapshot order.
func renderIRCColors(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "irc_colors.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"30%\",cols=\"^2m,3\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s\n\n", tr("IRC color"), tr("WeeChat color"))
	for _, color := range ctx.data.ircColors {
		w.Writef("| %s | %s\n", escape(color.IRC), escape(color.WeeChat))
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

func renderInfos(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "infos.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"100%\",cols=\"^1,^2,6,6\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s | %s | %s\n\n", tr("Plugin"), tr("Name"), tr("Description"), tr("Arguments"))
	for _, info := range ctx.data.infos {
		argsDesc := info.ArgsDescription
		if argsDesc == "" {
			argsDesc = "-"
		}
		w.Writef("| %s | %s | %s | %s\n\n",
			escape(info.Plugin), escape(info.Name),
			escape(tr(info.Description)), escape(tr(argsDesc)))
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

func renderInfosHashtable(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "infos_hashtable.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"100%\",cols=\"^1,^2,6,6,6\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s | %s | %s | %s\n\n",
		tr("Plugin"), tr("Name"), tr("Description"),
		tr("Hashtable (input)"), tr("Hashtable (output)"))
	for _, info := range ctx.data.infosHashtable {
		outputDesc := tr(info.OutputDescription)
		if outputDesc == "" {
			outputDesc = "-"
		}
		w.Writef("| %s | %s | %s | %s | %s\n\n",
			escape(info.Plugin), escape(info.Name),
			escape(tr(info.Description)), escape(tr(info.ArgsDescription)),
			escape(outputDesc))
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

func renderInfolists(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "infolists.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"100%\",cols=\"^1,^2,5,5,5\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s | %s | %s | %s\n\n",
		tr("Plugin"), tr("Name"), tr("Description"),
		tr("Pointer"), tr("Arguments"))
	for _, infolist := range ctx.data.infolists {
		pointerDesc := tr(infolist.PointerDescription)
		if pointerDesc == "" {
			pointerDesc = "-"
		}
		argsDesc := tr(infolist.ArgsDescription)
		if argsDesc == "" {
			argsDesc = "-"
		}
		w.Writef("| %s | %s | %s | %s | %s\n\n",
			escape(infolist.Plugin), escape(infolist.Name),
			escape(tr(infolist.Description)), escape(pointerDesc), escape(argsDesc))
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

func renderHdata(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "hdata.asciidoc")
	if err != nil {
		return err
	}
	for _, hd := range ctx.data.hdata {
		var variables, update strings.Builder
		for _, v := range hd.Vars {
			arraySize := ""
			if v.ArraySize != "" {
				arraySize = fmt.Sprintf(", array_size: \"%s\"", v.ArraySize)
			}
			hdataRef := ""
			if v.Hdata != "" {
				hdataRef = fmt.Sprintf(", hdata: \"%s\"", v.Hdata)
			}
			fmt.Fprintf(&variables, "*** '%s' (%s%s%s)\n", v.Name, v.Type, arraySize, hdataRef)
			if v.UpdateAllowed {
				fmt.Fprintf(&update, "*** '%s' (%s)\n", v.Name, v.Type)
			}
		}
		if hd.CreateAllowed {
			update.WriteString("*** '__create'\n")
		}
		if hd.DeleteAllowed {
			update.WriteString("*** '__delete'\n")
		}

		var lists strings.Builder
		for _, list := range hd.Lists {
			fmt.Fprintf(&lists, "*** '%s'\n", list)
		}

		anchor := "hdata_" + hd.Name
		w.Writef("* [[%s]]<<%s,'%s'>>: %s\n", anchor, anchor, escape(hd.Name), escape(tr(hd.Description)))
		w.Writef("** %s: %s\n", tr("plugin"), escape(hd.Plugin))
		w.Writef("** %s:\n%s", tr("variables"), escape(variables.String()))
		if update.Len() > 0 {
			w.Writef("** %s:\n%s", tr("update allowed"), escape(update.String()))
		}
		if lists.Len() > 0 {
			w.Writef("** %s:\n%s", tr("lists"), escape(lists.String()))
		}
	}
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

func renderCompletions(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "completions.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"65%\",cols=\"^1,^2,8\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s | %s\n\n", tr("Plugin"), tr("Name"), tr("Description"))
	for _, comp := range ctx.data.completions {
		w.Writef("| %s | %s | %s\n\n",
			escape(comp.Plugin), escape(comp.Item), escape(tr(comp.Description)))
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

// renderURLOptions writes the URL transfer option table. Names and
// constants are normalized to lower case for display.
func renderURLOptions(ctx *renderContext, cat ops.Category) error {
	tr := ctx.tr.Translate
	w, err := ctx.newWriter(cat, "url_options.asciidoc")
	if err != nil {
		return err
	}
	w.WriteString("[width=\"100%\",cols=\"2,^1,7\",options=\"header\"]\n")
	w.WriteString("|===\n")
	w.Writef("| %s | %s | %s ^(1)^\n\n", tr("Option"), tr("Type"), tr("Constants"))
	for _, opt := range ctx.data.urlOptions {
		constants := strings.ToLower(opt.Constants)
		constants = strings.ReplaceAll(constants, ",", ", ")
		if constants != "" {
			constants = " " + constants
		}
		w.Writef("| %s | %s |%s\n\n", strings.ToLower(opt.Name), opt.Type, constants)
	}
	w.WriteString("|===\n")
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}

// renderPluginsPriority writes the plugin load order, highest priority
// first.
func renderPluginsPriority(ctx *renderContext, cat ops.Category) error {
	w, err := ctx.newWriter(cat, "plugins_priority.asciidoc")
	if err != nil {
		return err
	}
	for _, group := range ctx.data.plugins {
		names := make([]string, len(group.names))
		for i, name := range group.names {
			names[i] = escape(name)
		}
		w.Writef(". %s (%d)\n", strings.Join(names, ", "), group.priority)
	}
	_, err = w.Finalize(cat.Name, ctx.counters)
	return err
}
