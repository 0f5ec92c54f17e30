package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"clickmart/internal/api"
	"clickmart/internal/cart"
	"clickmart/internal/config"
	"clickmart/internal/logger"
	"clickmart/internal/product"
	"clickmart/internal/storage"
	"clickmart/internal/user"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	slot, cleanup, err := buildSlot(cfg)
	if err != nil {
		logger.L().Fatal("storage init failed", zap.Error(err))
	}
	defer cleanup()

	session := user.NewSession(slot)
	store := cart.NewStore(slot)

	// Logout wipes the cart, same as the web storefront's logout flow.
	session.OnChange(func(ev user.Event) {
		if ev.Type == user.EventLogout {
			store.Clear()
		}
	})

	client := api.NewClient(cfg.APIBaseURL, session)
	products := product.NewService(client)

	if err := run(os.Args[1:], store, products); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildSlot(cfg *config.Config) (storage.Store, func(), error) {
	switch {
	case cfg.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return storage.NewRedis(client), func() { client.Close() }, nil
	case cfg.PostgresDSN != "":
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := storage.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return storage.NewPostgres(db), func() { db.Close() }, nil
	default:
		slot, err := storage.NewFile(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil
	}
}

func run(args []string, store *cart.Store, products product.Service) error {
	if len(args) == 0 {
		return errors.New("usage: storefront <show|browse|add|remove|qty|clear>")
	}

	switch args[0] {
	case "show":
		printCart(store)

	case "browse":
		fs := flag.NewFlagSet("browse", flag.ExitOnError)
		search := fs.String("search", "", "search term")
		category := fs.String("category", "", "category filter")
		page := fs.Int("page", 1, "page number")
		fs.Parse(args[1:])

		result, err := products.List(context.Background(), product.ListOptions{
			Search:   *search,
			Category: *category,
			Page:     *page,
		})
		if err != nil {
			return err
		}
		for _, p := range result.Products {
			fmt.Printf("%-12s %-30s %8s\n", p.ID, p.Name, p.Price)
		}
		fmt.Printf("page %d of %d (%d products)\n", result.Page, result.Pages, result.Total)

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		name := fs.String("name", "", "display name (skips catalog lookup)")
		price := fs.Float64("price", 0, "unit price (with -name)")
		fs.Parse(args[1:])

		if *name != "" {
			store.Add(product.Product{ID: *id, Name: *name, Price: product.NewPrice(*price)})
		} else {
			p, err := products.GetByID(context.Background(), *id)
			if err != nil {
				return err
			}
			store.Add(*p)
		}
		printCart(store)

	case "remove":
		if len(args) < 2 {
			return errors.New("usage: storefront remove <id>")
		}
		store.Remove(args[1])
		printCart(store)

	case "qty":
		fs := flag.NewFlagSet("qty", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		n := fs.Int("n", 1, "new quantity (0 removes)")
		fs.Parse(args[1:])

		store.SetQuantity(*id, *n)
		printCart(store)

	case "clear":
		store.Clear()
		printCart(store)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func printCart(store *cart.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range items {
		fmt.Printf("%-12s %-30s x%-3d %8s\n", it.ID, it.Name, it.Quantity, it.Price)
	}
	fmt.Printf("%d items, total %.2f\n", store.TotalItems(), store.TotalPrice())
}
