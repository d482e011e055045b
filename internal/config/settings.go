// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — настройки, которые можно переопределить файлом settings.yaml,
// не пересобирая игру. Всё, что здесь не задано, берётся из констант пакета.
type Settings struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // секунды между утками
	WindowScale   int     `yaml:"window_scale"`   // целочисленный масштаб окна
	ShowHitboxes  bool    `yaml:"show_hitboxes"`  // отрисовка хитбоксов поверх спрайтов
	PprofAddr     string  `yaml:"pprof_addr"`     // адрес pprof, пусто — выключен
	ActorDefsPath string  `yaml:"actor_defs"`     // путь к JSON с определениями актёров
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		SpawnInterval: SpawnInterval,
		WindowScale:   WindowScale,
		ShowHitboxes:  false,
		PprofAddr:     "localhost:6060",
		ActorDefsPath: "assets/defs/actors.json",
	}
}

// LoadSettings читает settings.yaml. Отсутствующий файл — не ошибка:
// возвращаются настройки по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}

	s.normalize()
	return s, nil
}

// normalize приводит некорректные значения к безопасным.
func (s *Settings) normalize() {
	if s.SpawnInterval <= 0 {
		s.SpawnInterval = SpawnInterval
	}
	if s.WindowScale < 1 {
		s.WindowScale = 1
	}
	if s.WindowScale > 8 {
		s.WindowScale = 8
	}
	if s.ActorDefsPath == "" {
		s.ActorDefsPath = "assets/defs/actors.json"
	}
}
