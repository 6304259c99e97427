package portal

import "github.com/castlelorestudios/EvenniaPluginSampleProject/jsonv"

// Command is one Evennia protocol message: a name, positional arguments
// and keyword arguments, carried on the wire as the JSON triple
// [name, [args...], {kwargs...}].
type Command struct {
	Name   string
	Args   jsonv.Array
	Kwargs jsonv.Object
}

// EncodeCommand renders a command triple as JSON text ready for Send.
// Invalid args or kwargs handles are replaced by empty ones, matching the
// portal's tolerance for missing pieces; an empty name fails.
func EncodeCommand(name string, args jsonv.Array, kwargs jsonv.Object) (string, bool) {
	if name == "" {
		log.Warning("EncodeCommand: command name must be provided")
		return "", false
	}
	if !args.Valid() {
		args = jsonv.NewArray()
	}
	if !kwargs.Valid() {
		kwargs = jsonv.NewObject()
	}
	triple := jsonv.NewArray()
	triple.AppendString(name)
	triple.AppendValue(args.Value())
	triple.AppendValue(kwargs.Value())
	return jsonv.SerializeArray(triple)
}

// EncodeTextCommand renders the "text" command carrying one line of
// player input, the common case for a MUD client.
func EncodeTextCommand(input string) (string, bool) {
	args := jsonv.NewArray()
	args.AppendString(input)
	return EncodeCommand("text", args, jsonv.Object{})
}

// DecodeCommand parses a portal line into a command. It fails on
// malformed JSON and on any document that is not a [string, array,
// object] triple; the returned handles alias the parsed tree.
func DecodeCommand(text string) (Command, bool) {
	arr, count, ok := jsonv.ParseArray(text)
	if !ok {
		return Command{}, false
	}
	if count != 3 {
		log.Warningf("DecodeCommand: expected 3 elements, got %d", count)
		return Command{}, false
	}
	nameVal, _ := arr.At(0)
	if nameVal.Kind() != jsonv.KindString {
		log.Warningf("DecodeCommand: name element is %s, not String", nameVal.Kind().String())
		return Command{}, false
	}
	argsVal, _ := arr.At(1)
	kwargsVal, _ := arr.At(2)
	args := argsVal.AsArray()
	kwargs := kwargsVal.AsObject()
	if !args.Valid() || !kwargs.Valid() {
		log.Warning("DecodeCommand: args/kwargs elements have wrong kinds")
		return Command{}, false
	}
	return Command{Name: nameVal.AsString(), Args: args, Kwargs: kwargs}, true
}

// TextOf extracts the first positional argument of a "text" command,
// which carries the game's output line.
func (c Command) TextOf() (string, bool) {
	if c.Name != "text" || !c.Args.Valid() {
		return "", false
	}
	v, ok := c.Args.At(0)
	if !ok || v.Kind() != jsonv.KindString {
		return "", false
	}
	return v.AsString(), true
}
