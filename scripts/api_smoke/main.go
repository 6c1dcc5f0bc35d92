package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/vovakirdan/tour-of-heroes/internal/client"
	zlog "github.com/vovakirdan/tour-of-heroes/internal/log"
	"github.com/vovakirdan/tour-of-heroes/internal/messages"
)

func main() {
	if err := run(); err != nil {
		log.Printf("api_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "http://localhost:8080", "heroes server base URL")
	name := flag.String("name", "Smoke Test", "name of the hero to create")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	msgs := messages.New()
	svc := client.NewService(*addr, &http.Client{}, msgs, zlog.New("warn", nil))
	defer func() {
		for _, line := range msgs.Messages() {
			fmt.Println(line)
		}
	}()

	created := svc.Create(ctx, *name)
	if created.Failed() {
		return fmt.Errorf("create: %w", created.Err)
	}
	hero := *created.Value
	fmt.Printf("created hero id=%d name=%q\n", hero.ID, hero.Name)

	got := svc.Get(ctx, hero.ID)
	if got.Failed() || got.Value.Name != hero.Name {
		return fmt.Errorf("get id=%d: unexpected result %+v (%v)", hero.ID, got.Value, got.Err)
	}

	hero.Name += " Renamed"
	if res := svc.Update(ctx, hero); res.Failed() {
		return fmt.Errorf("update: %w", res.Err)
	}

	found := svc.Search(ctx, "renamed")
	if found.Failed() {
		return fmt.Errorf("search: %w", found.Err)
	}
	matched := false
	for _, h := range found.Value {
		if h.ID == hero.ID {
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("search did not return hero id=%d", hero.ID)
	}

	if res := svc.Delete(ctx, hero.ID); res.Failed() {
		return fmt.Errorf("delete: %w", res.Err)
	}

	missing := svc.Get(ctx, hero.ID)
	if !missing.Failed() {
		return fmt.Errorf("hero id=%d still present after delete", hero.ID)
	}

	fmt.Println("smoke run passed")
	return nil
}
