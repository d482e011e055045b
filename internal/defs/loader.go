// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// ActorLibrary is a map to hold all actor definitions, keyed by their ID.
var ActorLibrary map[string]ActorDefinition

// LoadActorDefinitions reads the actor configuration file and populates the
// ActorLibrary.
func LoadActorDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read actor definitions file: %w", err)
	}

	var actorDefs []ActorDefinition
	if err := json.Unmarshal(file, &actorDefs); err != nil {
		return fmt.Errorf("failed to unmarshal actor definitions: %w", err)
	}

	ActorLibrary = make(map[string]ActorDefinition)
	for _, def := range actorDefs {
		ActorLibrary[def.ID] = def
	}

	log.Printf("Loaded %d actor definitions from %s", len(ActorLibrary), path)
	return nil
}

// UseDefaults заполняет библиотеку встроенными определениями.
func UseDefaults() {
	ActorLibrary = make(map[string]ActorDefinition)
	for _, def := range Defaults() {
		ActorLibrary[def.ID] = def
	}
}

// EnsureLoaded пытается загрузить определения из файла, а при неудаче
// откатывается на встроенные. Игра должна запускаться и без ассетов.
func EnsureLoaded(path string) {
	if err := LoadActorDefinitions(path); err != nil {
		log.Printf("actor definitions: %v, falling back to built-in defaults", err)
		UseDefaults()
	}
}
