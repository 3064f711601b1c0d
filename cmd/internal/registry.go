// Package internal holds the command registry shared by the root command and
// the built-in command packages.
package internal

import (
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// CommandProvider is implemented by every built-in command package.
type CommandProvider interface {
	// GetCommand returns the cobra command to attach to the root.
	GetCommand() *cobra.Command
	// GetName returns the command name.
	GetName() string
	// GetGroup returns the help group the command is listed under.
	GetGroup() string
}

var (
	mu        sync.RWMutex
	providers = map[string]CommandProvider{}
)

// Register adds a provider. A later provider with the same name replaces the earlier one.
// This is called from the init function of each command package.
func Register(provider CommandProvider) {
	mu.Lock()
	defer mu.Unlock()
	providers[provider.GetName()] = provider
}

// Providers returns the registered providers sorted by name.
func Providers() []CommandProvider {
	mu.RLock()
	defer mu.RUnlock()

	list := lo.Values(providers)
	sort.Slice(list, func(i, j int) bool { return list[i].GetName() < list[j].GetName() })
	return list
}

// RegisterAll attaches every registered command to root.
func RegisterAll(root *cobra.Command) {
	groups := map[string]bool{}
	for _, g := range root.Groups() {
		groups[g.ID] = true
	}

	for _, p := range Providers() {
		cmd := p.GetCommand()
		if group := p.GetGroup(); group != "" {
			if !groups[group] {
				root.AddGroup(&cobra.Group{ID: group, Title: group + ":"})
				groups[group] = true
			}
			cmd.GroupID = group
		}
		root.AddCommand(cmd)
	}
}
