package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yusufakg/AmiiboGenerator/internal/config"
)

// IsUp checks if the key matches any "up" navigation key.
func IsUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Up, msg.String())
}

// IsDown checks if the key matches any "down" navigation key.
func IsDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Down, msg.String())
}

// IsJumpUp checks if the key matches any coarse jump-up key.
func IsJumpUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.JumpUp, msg.String())
}

// IsJumpDown checks if the key matches any coarse jump-down key.
func IsJumpDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.JumpDown, msg.String())
}

// IsPageUp checks if the key matches any page-up key.
func IsPageUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.PageUp, msg.String())
}

// IsPageDown checks if the key matches any page-down key.
func IsPageDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.PageDown, msg.String())
}

// IsToggle checks if the key matches any selection toggle key.
func IsToggle(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Toggle, msg.String())
}

// IsToggleAll checks if the key matches the toggle-all action.
func IsToggleAll(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.ToggleAll
}

// IsImages checks if the key matches the image toggle action.
func IsImages(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Images
}

// IsSort checks if the key matches the sort cycle action.
func IsSort(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Sort
}

// IsGenerate checks if the key matches the generate action.
func IsGenerate(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Generate
}

// IsDelete checks if the key matches the delete action.
func IsDelete(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Delete
}

// IsUpdate checks if the key matches the database refresh action.
func IsUpdate(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Update
}

// IsExit checks if the key matches the exit action.
func IsExit(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Exit
}

// IsContinue checks if the key matches the summary dismiss action.
func IsContinue(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Continue
}
