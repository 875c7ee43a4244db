package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"go-movie-catalog/internal/catalog"
	"go-movie-catalog/internal/config"
	"go-movie-catalog/internal/generator"
	"go-movie-catalog/internal/model"
	"go-movie-catalog/internal/storage"
	"go-movie-catalog/internal/website"
)

var (
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	worstStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	// --- Command Parsing using 'flag' package ---
	// Define subcommands
	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	randomCmd := flag.NewFlagSet("random", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	sortCmd := flag.NewFlagSet("sort", flag.ExitOnError)
	websiteCmd := flag.NewFlagSet("website", flag.ExitOnError)

	// Every subcommand accepts an explicit config file
	configFlags := map[*flag.FlagSet]*string{}
	for _, cmd := range []*flag.FlagSet{initCmd, listCmd, addCmd, deleteCmd, updateCmd, statsCmd, randomCmd, searchCmd, sortCmd, websiteCmd} {
		configFlags[cmd] = cmd.String("config", "", "Path to config file (optional)")
	}

	// Flags for init command
	initForce := initCmd.Bool("force", false, "Overwrite an existing catalog file")

	// Flags for add command
	addTitle := addCmd.String("title", "", "Title of the movie (required)")
	addYear := addCmd.String("year", "", "Release year (required)")
	addRating := addCmd.Float64("rating", 0, "Rating of the movie (required)")
	addPoster := addCmd.String("poster", "", "Poster image URL (required)")

	// Flags for delete command
	deleteTitle := deleteCmd.String("title", "", "Title of the movie to delete (required)")

	// Flags for update command
	updateTitle := updateCmd.String("title", "", "Title of the movie to annotate (required)")
	updateNote := updateCmd.String("note", "", "Note to attach to the movie (required)")

	// Flags for search command
	searchKeyword := searchCmd.String("keyword", "", "Keyword to look for in titles (required)")

	// Flags for website command
	websiteOutput := websiteCmd.String("output", "", "Output file (defaults to website.output from config)")
	websiteExport := websiteCmd.String("export-template", "", "Write the built-in page template to this path and exit")
	websiteForce := websiteCmd.Bool("force", false, "Overwrite an existing exported template")

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "init":
		initCmd.Parse(os.Args[2:])
		handleInit(loadConfig(*configFlags[initCmd]), *initForce)
	case "list":
		listCmd.Parse(os.Args[2:])
		handleList(openStore(*configFlags[listCmd]))
	case "add":
		addCmd.Parse(os.Args[2:])
		if *addTitle == "" || *addYear == "" || *addPoster == "" {
			fmt.Println("Error: -title, -year, -rating and -poster flags are required for add command")
			addCmd.Usage()
			os.Exit(1)
		}
		handleAdd(openStore(*configFlags[addCmd]), *addTitle, *addYear, *addRating, *addPoster)
	case "delete":
		deleteCmd.Parse(os.Args[2:])
		if *deleteTitle == "" {
			fmt.Println("Error: -title flag is required for delete command")
			deleteCmd.Usage()
			os.Exit(1)
		}
		handleDelete(openStore(*configFlags[deleteCmd]), *deleteTitle)
	case "update":
		updateCmd.Parse(os.Args[2:])
		if *updateTitle == "" || *updateNote == "" {
			fmt.Println("Error: -title and -note flags are required for update command")
			updateCmd.Usage()
			os.Exit(1)
		}
		handleUpdate(openStore(*configFlags[updateCmd]), *updateTitle, *updateNote)
	case "stats":
		statsCmd.Parse(os.Args[2:])
		handleStats(openStore(*configFlags[statsCmd]))
	case "random":
		randomCmd.Parse(os.Args[2:])
		handleRandom(openStore(*configFlags[randomCmd]))
	case "search":
		searchCmd.Parse(os.Args[2:])
		if *searchKeyword == "" {
			fmt.Println("Error: -keyword flag is required for search command")
			searchCmd.Usage()
			os.Exit(1)
		}
		handleSearch(openStore(*configFlags[searchCmd]), *searchKeyword)
	case "sort":
		sortCmd.Parse(os.Args[2:])
		handleSort(openStore(*configFlags[sortCmd]))
	case "website":
		websiteCmd.Parse(os.Args[2:])
		if *websiteExport != "" {
			handleExportTemplate(*websiteExport, *websiteForce)
			return
		}
		handleWebsite(*configFlags[websiteCmd], *websiteOutput)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("\nUsage: movies-cli <command> [options]")
	fmt.Println("Available commands:")
	fmt.Println("  init          Create an empty catalog file for the configured backend")
	fmt.Println("  list          List all movies in the catalog")
	fmt.Println("  add -title <title> -year <year> -rating <rating> -poster <url>")
	fmt.Println("                Add a movie to the catalog")
	fmt.Println("  delete -title <title>")
	fmt.Println("                Delete a movie from the catalog")
	fmt.Println("  update -title <title> -note <note>")
	fmt.Println("                Attach a note to a movie")
	fmt.Println("  stats         Show average/median rating and the best and worst movies")
	fmt.Println("  random        Pick a movie for the night")
	fmt.Println("  search -keyword <keyword>")
	fmt.Println("                Find movies whose title contains the keyword")
	fmt.Println("  sort          List movies from the lowest rating to the highest")
	fmt.Println("  website [-output <file>] [-export-template <file>]")
	fmt.Println("                Generate the static catalog website")
	fmt.Println("\nAll commands accept -config <file>; MOVIES_* environment variables override config keys.")
}

func loadConfig(configPath string) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}

// openStore builds the configured backend. Used by every subcommand that
// needs an existing catalog.
func openStore(configPath string) storage.MovieStore {
	cfg := loadConfig(configPath)
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Error opening %s catalog %s: %v (run 'movies-cli init' to create it)", cfg.Storage.Backend, cfg.Storage.Path, err)
	}
	return store
}

func handleInit(cfg *config.Config, force bool) {
	if err := generator.SeedStoreFile(cfg.Storage.Backend, cfg.Storage.Path, force); err != nil {
		log.Fatalf("Error creating catalog file: %v", err)
	}
	fmt.Printf("Created empty %s catalog at %s\n", cfg.Storage.Backend, cfg.Storage.Path)
}

func handleList(store storage.MovieStore) {
	movies := store.ListMovies()
	if len(movies) == 0 {
		fmt.Println("No movies in the database.")
		return
	}

	fmt.Printf("%d movie(s) in the database:\n\n", len(movies))
	for _, title := range slices.Sorted(maps.Keys(movies)) {
		info := movies[title]
		fmt.Printf("Title: %s\n", title)
		fmt.Printf("Rating: %.1f\n", info.Rating)
		fmt.Printf("Year: %s\n\n", info.Year)
	}
}

func handleAdd(store storage.MovieStore, title, year string, rating float64, poster string) {
	status, err := store.AddMovie(title, model.Year(year), rating, poster)
	if err != nil {
		log.Fatalf("Error adding movie: %v", err)
	}
	fmt.Println(status)
}

func handleDelete(store storage.MovieStore, title string) {
	status, err := store.DeleteMovie(title)
	if err != nil {
		log.Fatalf("Error deleting movie: %v", err)
	}
	fmt.Println(status)
}

func handleUpdate(store storage.MovieStore, title, note string) {
	status, err := store.UpdateMovie(title, note)
	if err != nil {
		log.Fatalf("Error updating movie: %v", err)
	}
	fmt.Println(status)
}

func handleStats(store storage.MovieStore) {
	manager := catalog.NewManager(store, nil)
	stats, err := manager.Stats()
	if err != nil {
		log.Fatalf("Error computing stats: %v", err)
	}

	fmt.Printf("Average rating: %.2f\n", stats.Average)
	fmt.Printf("Median rating: %.2f\n", stats.Median)
	for _, title := range stats.Best {
		fmt.Println(bestStyle.Render(fmt.Sprintf("The best movie: %s, Rating: %.1f", title, stats.BestRating)))
	}
	for _, title := range stats.Worst {
		fmt.Println(worstStyle.Render(fmt.Sprintf("The worst movie: %s, Rating: %.1f", title, stats.WorstRating)))
	}
}

func handleRandom(store storage.MovieStore) {
	manager := catalog.NewManager(store, nil)
	title, ok := manager.Random()
	if !ok {
		fmt.Println("No movies in the database.")
		return
	}
	fmt.Printf("The movie for the night is '%s'\n", title)
}

func handleSearch(store storage.MovieStore, keyword string) {
	manager := catalog.NewManager(store, nil)
	matches := manager.Search(keyword)
	if len(matches) == 0 {
		fmt.Printf("No movies matching %q\n", keyword)
		return
	}
	fmt.Println("Search Results:")
	for _, title := range matches {
		fmt.Println(title)
	}
}

func handleSort(store storage.MovieStore) {
	manager := catalog.NewManager(store, nil)
	for _, movie := range manager.SortedByRating() {
		fmt.Printf("Movie: %s, Rating: %.1f\n", movie.Title, movie.Rating)
	}
}

func handleWebsite(configPath, outputOverride string) {
	cfg := loadConfig(configPath)
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Error opening %s catalog %s: %v (run 'movies-cli init' to create it)", cfg.Storage.Backend, cfg.Storage.Path, err)
	}

	engine := website.NewEngine(store, cfg.Website.Title)
	engine.TemplatePath = cfg.Website.Template

	output := cfg.Website.Output
	if outputOverride != "" {
		output = outputOverride
	}
	if err := engine.Generate(output); err != nil {
		log.Fatalf("Error generating website: %v", err)
	}
	fmt.Printf("Website has been generated: %s\n", output)
}

func handleExportTemplate(path string, force bool) {
	if err := generator.ExportPageTemplate(path, force); err != nil {
		log.Fatalf("Error exporting page template: %v", err)
	}
	fmt.Printf("Page template written to %s\n", path)
}
