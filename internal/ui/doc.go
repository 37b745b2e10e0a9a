// Package ui implements the Fyne user interface: the month grid, event and
// settings dialogs, menus, and localization.
package ui
