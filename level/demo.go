package level

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDemo reads the recorded demo of mission/level from the demo file at path.
// When the file or the entry is missing it returns an empty Demo and an error
// wrapping ErrDemoNotFound; callers may log it and carry on.
func LoadDemo(path, mission, level string) (Demo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Demo{}, fmt.Errorf("%w: %v", ErrDemoNotFound, err)
	}
	return ParseDemo(data, mission, level)
}

// ParseDemo extracts mission/level from demo file contents.
func ParseDemo(data []byte, mission, level string) (Demo, error) {
	var all map[string]map[string]Demo
	if err := json.Unmarshal(data, &all); err != nil {
		return Demo{}, fmt.Errorf("%w: demo file: %v", ErrMalformedLevel, err)
	}
	demo, ok := all[mission][level]
	if !ok {
		return Demo{}, fmt.Errorf("%w: mission %s level %s", ErrDemoNotFound, mission, level)
	}
	return demo, nil
}
