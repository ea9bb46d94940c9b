package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rimrim990/delivery-service/internal/migrate"
)

func main() {
	_ = godotenv.Load()

	var (
		dsn = flag.String("dsn", os.Getenv("DELIVERY_PG_DSN"), "postgres dsn (defaults to DELIVERY_PG_DSN)")
		dir = flag.String("dir", "ops/migrations/sql", "directory with .up.sql/.down.sql files")
	)
	flag.Parse()

	if *dsn == "" {
		log.Fatal("migrate: dsn required (flag -dsn or DELIVERY_PG_DSN)")
	}
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("migrate: open db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("migrate: ping db: %v", err)
	}

	mgr := migrate.NewManager(db, *dir)
	switch cmd {
	case "up":
		err = mgr.Up(ctx)
	case "down":
		err = mgr.Down(ctx)
	case "status":
		var applied []string
		applied, err = mgr.Status(ctx)
		for _, name := range applied {
			fmt.Println(name)
		}
	default:
		log.Fatalf("migrate: unknown command %q (want up, down or status)", cmd)
	}
	if err != nil {
		log.Fatalf("migrate: %s: %v", cmd, err)
	}
}
