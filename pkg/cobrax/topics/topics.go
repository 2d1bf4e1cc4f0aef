// Package topics provides a pluggable, topic-based help system for Cobra
// CLI applications. Topics are markdown or plain-text files loaded from an
// fs.FS (typically an embed.FS), making the binary self-documenting.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Format  string // file extension, drives rendering
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a TopicManager over the given filesystem, scanning it for
// .md and .txt files.
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	if err := tm.scan(fsys); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

// scan walks the filesystem for topic files
func (tm *TopicManager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		tm.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
}

// Get retrieves a topic by name
func (tm *TopicManager) Get(name string) (*Topic, bool) {
	topic, exists := tm.topics[name]
	return topic, exists
}

// List returns all topic names, sorted
func (tm *TopicManager) List() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for terminal display
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, topic.Format)
}

// Command builds a `topics [name]` cobra command over the manager.
func (tm *TopicManager) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [name]",
		Short: "Display documentation topics",
		Long:  "Display a list of documentation topics, or render one by name.",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := tm.List()
				if len(names) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No topics available.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			topic, exists := tm.Get(args[0])
			if !exists {
				return fmt.Errorf("unknown topic %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return nil
		},
	}
}
