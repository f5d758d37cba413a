package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quick-meal-planner/internal/app"
	"quick-meal-planner/internal/config"
	"quick-meal-planner/internal/database"
	"quick-meal-planner/internal/schedule"
	"quick-meal-planner/internal/transaction"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	application, err := app.New(cfg, db, schedule.NewFileSource(cfg.CalendarFile))
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "import-recipes":
		importCmd := flag.NewFlagSet("import-recipes", flag.ExitOnError)
		dir := importCmd.String("dir", "", "Recipe directory (defaults to the remembered one)")
		importCmd.Parse(os.Args[2:])

		summary, err := application.ImportRecipes(ctx, *dir)
		if err != nil {
			log.Fatalf("Recipe import failed: %v", err)
		}
		fmt.Printf("Found %d recipe files: loaded %d, failed %d\n", summary.Found, summary.Loaded, summary.Failed)

	case "plan":
		plan, err := application.GeneratePlan(ctx, time.Now())
		if err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
		printPlan(plan.Days)

	case "show-plan":
		plan, err := application.CurrentPlan(ctx)
		if err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}
		printPlan(plan.Days)

	case "reshuffle":
		date := parseDateArg("reshuffle")
		plan, err := application.ReshuffleDay(ctx, date)
		if err != nil {
			log.Fatalf("Reshuffle failed: %v", err)
		}
		printPlan(plan.Days)

	case "clear-day":
		date := parseDateArg("clear-day")
		plan, err := application.ClearDay(ctx, date)
		if err != nil {
			log.Fatalf("Clear failed: %v", err)
		}
		printPlan(plan.Days)

	case "grocery":
		list, err := application.GroceryList(ctx)
		if err != nil {
			log.Fatalf("Failed to load grocery list: %v", err)
		}
		for _, item := range list.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Printf("[%s] %-30s %-12s (%v)\n", mark, item.Name, item.Quantity, item.RecipeNames)
		}

	case "history":
		plans, err := application.History(ctx)
		if err != nil {
			log.Fatalf("Failed to load history: %v", err)
		}
		for _, h := range plans {
			fmt.Printf("%s  %s  (%d days)\n", h.ID, h.WeekLabel(), len(h.Days))
		}

	case "restore":
		if len(os.Args) < 3 {
			log.Fatal("Usage: restore <plan-id>")
		}
		plan, err := application.RestorePlan(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Restore failed: %v", err)
		}
		printPlan(plan.Days)

	case "import-transactions":
		if len(os.Args) < 3 {
			log.Fatal("Usage: import-transactions <file.csv>")
		}
		path := os.Args[2]
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}

		result, err := application.ImportTransactions(ctx, path, raw)
		if err != nil {
			log.Fatalf("Transaction import failed: %v", err)
		}
		fmt.Printf("Imported %d transactions, skipped %d rows\n", len(result.Transactions), result.Skipped)

	case "transactions":
		txCmd := flag.NewFlagSet("transactions", flag.ExitOnError)
		rng := txCmd.String("range", string(transaction.AllTime), "Date range filter")
		txCmd.Parse(os.Args[2:])

		txs, err := application.Transactions(ctx, transaction.DateRange(*rng))
		if err != nil {
			log.Fatalf("Failed to load transactions: %v", err)
		}
		for _, tx := range txs {
			fmt.Printf("%s  %-25s %10s  %s\n", tx.Date.Format("2006-01-02"), tx.Payee, tx.FormattedAmount(), tx.Category)
		}

	case "importlog-cleanup":
		cleanupCmd := flag.NewFlagSet("importlog-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := application.CleanupImportLog(ctx, *days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old import records.\n", affected)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func parseDateArg(cmd string) time.Time {
	if len(os.Args) < 3 {
		log.Fatalf("Usage: %s <yyyy-mm-dd>", cmd)
	}
	date, err := time.ParseInLocation("2006-01-02", os.Args[2], time.Local)
	if err != nil {
		log.Fatalf("Invalid date %q: %v", os.Args[2], err)
	}
	return date
}

func printPlan(days []schedule.DaySchedule) {
	for _, day := range days {
		name := "-"
		if day.Recommended != nil {
			name = fmt.Sprintf("%s (%s)", day.Recommended.Name, day.Recommended.FormattedTotalTime())
		}
		busy := ""
		if day.IsBusy {
			busy = "  [busy]"
		}
		fmt.Printf("%s  %s%s\n", day.Date.Format("Mon Jan 2"), name, busy)
	}
}

func printUsage() {
	fmt.Println("Usage: quick-meal-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  import-recipes        Parse recipe HTML files into the database")
	fmt.Println("  plan                  Generate a weekly meal plan from the calendar")
	fmt.Println("  show-plan             Print the current plan")
	fmt.Println("  reshuffle <date>      Re-pick one day's recipe")
	fmt.Println("  clear-day <date>      Unassign one day's recipe")
	fmt.Println("  grocery               Print the current grocery list")
	fmt.Println("  history               List archived plans")
	fmt.Println("  restore <plan-id>     Load an archived plan as the current one")
	fmt.Println("  import-transactions   Decode a CSV export into the database")
	fmt.Println("  transactions          Print stored transactions")
	fmt.Println("  importlog-cleanup     Remove old import records")
}
