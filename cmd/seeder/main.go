package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = strings.TrimRight(envURL, "/")
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		seedCmd(apiURL, args)
	case "list":
		listCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Recipe Seeder - Development tool for populating the recipe API

USAGE:
  seeder <command> [options]

COMMANDS:
  seed      Register (or log in) a demo cook and create sample recipes
  list      Print stored recipes
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Create the demo account and one recipe per category
  seeder seed

  # Seed as a different account
  seeder seed --user=alice --email=alice@example.com --password=secret123

  # Show only desserts
  seeder list --category=Dessert`)
}

func seedCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	userName := fs.String("user", "democook", "Username of the seeding account")
	email := fs.String("email", "democook@example.com", "Email of the seeding account")
	password := fs.String("password", "demopassword123", "Password of the seeding account")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Println("=== Recipe Seeder ===")
	fmt.Println()

	fmt.Printf("Registering %s... ", *userName)
	account, err := client.Register(*userName, *email, *password)
	if err != nil {
		// Already seeded once; fall back to logging in
		fmt.Println("exists, logging in")
		account, err = client.Login(*email, *password)
		if err != nil {
			fmt.Printf("FAILED\n  Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("OK")
	}
	fmt.Printf("  Account: %s (%s)\n", account.UserName, account.ID)
	fmt.Println()

	recipes := sampleRecipes()
	fmt.Printf("Creating %d recipes:\n", len(recipes))

	var failed []error
	for i, recipe := range recipes {
		created, err := client.CreateRecipe(account.Token, recipe)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, len(recipes), err)
			failed = append(failed, err)
			continue
		}
		fmt.Printf("  [%d/%d] %-10s %s (%s)\n", i+1, len(recipes), created.Category, created.Title, created.ID)
	}

	fmt.Println()
	if err := errors.Join(failed...); err != nil {
		fmt.Printf("Done with %d failures.\n", len(failed))
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func listCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "Only show recipes in this category (Breakfast, Lunch, Dinner, Dessert, Snack)")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	recipes, err := client.ListRecipes(*category)
	if err != nil {
		fmt.Printf("Failed to list recipes: %v\n", err)
		os.Exit(1)
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	for _, r := range recipes {
		fmt.Printf("%-36s  %-10s  %3d min  %s\n", r.ID, r.Category, r.CookingTime, r.Title)
	}
	fmt.Printf("\n%d recipes\n", len(recipes))
}

func sampleRecipes() []Recipe {
	return []Recipe{
		{
			Title:        "Buttermilk Pancakes",
			Ingredients:  []string{"2 cups flour", "2 cups buttermilk", "2 eggs", "2 tbsp sugar", "1 tsp baking soda"},
			Instructions: "Whisk the dry and wet ingredients separately, fold together and cook on a buttered griddle.",
			Category:     "Breakfast",
			PhotoURL:     "https://images.example.com/pancakes.jpg",
			CookingTime:  25,
		},
		{
			Title:        "Chickpea Salad Wrap",
			Ingredients:  []string{"1 can chickpeas", "1 celery stalk", "2 tbsp mayonnaise", "1 tortilla", "lettuce"},
			Instructions: "Mash the chickpeas with mayonnaise and chopped celery, then wrap with lettuce.",
			Category:     "Lunch",
			PhotoURL:     "https://images.example.com/chickpea-wrap.jpg",
			CookingTime:  10,
		},
		{
			Title:        "Roast Chicken",
			Ingredients:  []string{"1 whole chicken", "1 lemon", "4 garlic cloves", "thyme", "olive oil"},
			Instructions: "Stuff the bird with lemon and garlic, rub with oil and thyme, roast at 220C for 75 minutes.",
			Category:     "Dinner",
			PhotoURL:     "https://images.example.com/roast-chicken.jpg",
			CookingTime:  90,
		},
		{
			Title:        "Chocolate Mousse",
			Ingredients:  []string{"200g dark chocolate", "4 eggs", "2 tbsp sugar", "pinch of salt"},
			Instructions: "Melt the chocolate, fold in yolks then whipped whites, and chill for four hours.",
			Category:     "Dessert",
			PhotoURL:     "https://images.example.com/mousse.jpg",
			CookingTime:  30,
		},
		{
			Title:        "Spiced Nuts",
			Ingredients:  []string{"2 cups mixed nuts", "1 tbsp maple syrup", "1 tsp smoked paprika", "salt"},
			Instructions: "Toss everything together and roast at 180C for 12 minutes, stirring once.",
			Category:     "Snack",
			PhotoURL:     "https://images.example.com/spiced-nuts.jpg",
			CookingTime:  15,
		},
	}
}
