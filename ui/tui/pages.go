package tui

import (
	"tabpager/internal/config"
	"tabpager/internal/tabs"
	"tabpager/ui/tui/components"
)

// BuildTabs turns the configured tabs into widget tabs.
func BuildTabs(cfg []config.TabConfig) ([]tabs.Tab[components.Page], error) {
	out := make([]tabs.Tab[components.Page], 0, len(cfg))
	for _, tc := range cfg {
		var page components.Page
		switch {
		case tc.Trace:
			page = components.NewTracePage(len(cfg))
		case tc.File != "":
			p, err := components.NewFilePage(tc.File)
			if err != nil {
				return nil, err
			}
			page = p
		default:
			page = components.NewTextPage(tc.Text)
		}
		out = append(out, tabs.New(tc.Label, page))
	}
	return out, nil
}
