package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gridfilter/internal/config"
	"gridfilter/internal/datasource"
	"gridfilter/internal/eventbus"
	"gridfilter/internal/logic"
	"gridfilter/internal/ui"
	"gridfilter/internal/ui/viewmodels"
	"gridfilter/internal/ui/views"
)

func main() {
	os.Exit(run())
}

// run executes the program and returns the process exit code so deferred
// cleanup runs before exiting
func run() int {
	var (
		configPath string
		filterText string
		listOnly   bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&filterText, "filter", "", "Initial filter query, e.g. field2:Mode")
	flag.BoolVar(&listOnly, "list", false, "Print the rows matching -filter and exit")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("gridfilter.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	log.Printf("Loaded config from %s", configSvc.Path())

	if filterText == "" {
		filterText = cfg.UISettings.InitialFilter
	}

	records, source := datasource.Load(cfg)
	store := logic.NewMemoryRecordStore(records)
	bus.Publish(eventbus.RecordsLoadedEvent{Count: len(records), Source: source})
	log.Printf("Loaded %d records from %s", len(records), source)

	if listOnly {
		view := viewmodels.NewFilteredView(store, logic.ColumnFilter{})
		view.SetQuery(filterText)
		fmt.Println(views.RenderList(view.Visible(), cfg.UISettings.Field1Header, cfg.UISettings.Field2Header))
		return 0
	}

	bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterChangedEvent); ok {
			log.Printf("Filter %q: %d of %d rows", event.Query, event.Visible, event.Total)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	uiModel := ui.NewModel(bus, cfg, store)
	uiModel.SetQuery(filterText)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")

	if saved, err := config.RememberQuery(configSvc, cfg, uiModel.Query()); err != nil {
		log.Printf("Error saving config: %v", err)
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
		return 1
	} else if saved {
		log.Printf("Config saved to %s", configSvc.Path())
	}
	return 0
}
