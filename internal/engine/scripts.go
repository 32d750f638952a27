package engine

import (
	"fmt"
	"maps"
	"slices"
)

// ScriptFactory creates a Component from scene-file props.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer converts a Component back to props. It returns nil for
// components it does not own.
type ScriptSerializer func(c Component) map[string]any

// ScriptApplier applies a single property value to a script component.
// Returns true if the property was applied.
type ScriptApplier func(c Component, propName string, value any) bool

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
	applier    ScriptApplier
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script. serializer and applier may be nil.
// Registering a name twice panics.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer, applier ScriptApplier) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer, applier: applier}
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(props)
}

// SerializeScript tries every registered serializer against c.
// Returns (name, props, true) if one claims it.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for _, name := range GetRegisteredScripts() {
		entry := scriptRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// GetRegisteredScripts returns all registered script names, sorted.
func GetRegisteredScripts() []string {
	return slices.Sorted(maps.Keys(scriptRegistry))
}

// ApplyScriptProperty applies a property value to a script component.
func ApplyScriptProperty(c Component, propName string, value any) bool {
	for _, name := range GetRegisteredScripts() {
		entry := scriptRegistry[name]
		if entry.applier == nil {
			continue
		}
		if entry.applier(c, propName, value) {
			return true
		}
	}
	return false
}
