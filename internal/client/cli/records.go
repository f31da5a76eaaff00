package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

// promptCollection asks the user for a collection name. Aliases and
// mixed-case input are accepted.
func (a *App) promptCollection() (models.Collection, error) {
	names := make([]string, 0, len(models.Collections()))
	for _, c := range models.Collections() {
		names = append(names, string(c))
	}

	raw, err := getSimpleText(a.reader, "Enter collection ("+strings.Join(names, ", ")+")", os.Stdout)
	if err != nil {
		return "", err
	}

	col, ok := models.NormalizeKey(raw)
	if !ok {
		return "", fmt.Errorf("unknown collection %q", raw)
	}
	return col, nil
}

// List prints every record of a collection as one JSON line per record.
func (a *App) List(ctx context.Context) error {
	col, err := a.promptCollection()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	items, err := a.store.List(ctx, col)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, item := range items {
		b, err := json.Marshal(&item)
		if err != nil {
			log.Printf("error: %v", err)
			continue
		}
		fmt.Println(string(b))
	}
	fmt.Printf("%d record(s)\n", len(items))
	return nil
}

// Add collects field values interactively and stores a new record. The
// record is created unsynced; the owner id is attached when a user is
// logged in.
func (a *App) Add(ctx context.Context) error {
	col, err := a.promptCollection()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fields, err := GetFields(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if a.userID != "" {
		fields["userId"] = a.userID
	}

	rec := &models.Record{Fields: fields}
	if err := a.store.Add(ctx, col, rec); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Created %s/%s\n", col, rec.ID)
	return nil
}

// Show fetches and displays a single record by id.
func (a *App) Show(ctx context.Context) error {
	col, err := a.promptCollection()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := getSimpleText(a.reader, "Enter record id to show", os.Stdout)
	if err != nil {
		return err
	}

	rec, err := a.store.Get(ctx, col, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if rec == nil {
		fmt.Printf("No record %s/%s\n", col, id)
		return nil
	}

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// Delete removes a record by its identifier, prompting the user for the ID.
// Records referencing the deleted id are left in place.
func (a *App) Delete(ctx context.Context) error {
	col, err := a.promptCollection()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := getSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.Delete(ctx, col, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}
