package domain

import (
	"strconv"
	"strings"
)

// Agent - агент, которому можно назначить объявление.
type Agent struct {
	ID              int64
	Name            string
	ProfileImageURL string
}

// FirstName - первое слово имени, для шапки дашборда.
func (a Agent) FirstName() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// AgentOption - пункт выпадающего списка агентов.
type AgentOption struct {
	Value    string
	Label    string
	Selected bool
	Disabled bool
}

// AgentOptions строит список для выпадающего меню.
// Приоритет выбора: selectedID, затем agentId из сессии, затем совпадение имени, затем первый агент.
func AgentOptions(agents []Agent, selectedID string, user User) []AgentOption {
	if len(agents) == 0 {
		return []AgentOption{{Value: "", Label: "No agents available", Selected: true, Disabled: true}}
	}

	preferredID := strings.TrimSpace(selectedID)
	if preferredID == "" && user.AgentID != nil {
		preferredID = strconv.FormatInt(*user.AgentID, 10)
	}
	preferredName := strings.ToLower(strings.TrimSpace(user.Name))

	options := make([]AgentOption, len(agents))
	selected := false
	for i, agent := range agents {
		value := strconv.FormatInt(agent.ID, 10)
		options[i] = AgentOption{Value: value, Label: agent.Name}
		if selected {
			continue
		}
		if preferredID != "" && value == preferredID {
			options[i].Selected = true
			selected = true
		} else if preferredID == "" && preferredName != "" && strings.ToLower(strings.TrimSpace(agent.Name)) == preferredName {
			options[i].Selected = true
			selected = true
		}
	}

	if !selected {
		options[0].Selected = true
	}
	return options
}
