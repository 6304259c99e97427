package portal

import "github.com/castlelorestudios/EvenniaPluginSampleProject/jsonv"

// Multimedia kwargs mirror the out-of-band payloads the game server
// attaches to rooms and objects: an image with an optional clickable map,
// or a sound cue. The display layer consumes these; the bridge only
// builds and recognizes the shapes.

// ImagePayload builds the kwargs object of an "image" command. imageMap
// is optional and omitted when empty.
func ImagePayload(url, imageMap string) jsonv.Object {
	obj := jsonv.NewObject()
	obj.SetField("image_url", url)
	if imageMap != "" {
		obj.SetField("image_map", imageMap)
	}
	return obj
}

// SoundPayload builds the kwargs object of a "sound" command.
func SoundPayload(url string) jsonv.Object {
	obj := jsonv.NewObject()
	obj.SetField("sound_url", url)
	return obj
}

// ImageOf extracts the image URL and optional map from an "image"
// command's kwargs.
func (c Command) ImageOf() (url, imageMap string, ok bool) {
	if c.Name != "image" || !c.Kwargs.Valid() {
		return "", "", false
	}
	url, ok = c.Kwargs.GetField("image_url")
	if !ok {
		return "", "", false
	}
	imageMap, _ = c.Kwargs.GetField("image_map")
	return url, imageMap, true
}

// SoundOf extracts the sound URL from a "sound" command's kwargs.
func (c Command) SoundOf() (string, bool) {
	if c.Name != "sound" || !c.Kwargs.Valid() {
		return "", false
	}
	return c.Kwargs.GetField("sound_url")
}
