// Command libris-import bulk-loads catalog titles from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"libris/config"
	"libris/internal/domain/entity"
	"libris/internal/domain/repository"
	"libris/internal/errors"
	"libris/internal/infra/persistence/postgres"
	"libris/internal/util"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// bookRecord is one entry of the import file.
type bookRecord struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	PublicationDate string `json:"publication_date"`
	Pages           *int   `json:"pages"`
}

func main() {
	var filePath string

	rootCmd := &cobra.Command{
		Use:   "libris-import",
		Short: "Import catalog titles from a JSON file",
		Long: `Reads an array of book records from a JSON file and inserts them
into the catalog. Titles whose ISBN already exists are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), filePath)
		},
	}

	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the JSON file to import (required)")
	if err := rootCmd.MarkFlagRequired("file"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runImport(ctx context.Context, filePath string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	start := time.Now()

	records, err := readImportFile(logger, filePath)
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer closeDB(logger, db)

	bookRepo := postgres.NewBookRepository(db)

	var imported, skipped, failed int
	for _, record := range records {
		book, err := toBook(record)
		if err != nil {
			logger.Warn("Skipping invalid record", slog.String("isbn", record.ISBN), slog.Any("error", err))
			failed++

			continue
		}

		if err := bookRepo.Create(ctx, book); err != nil {
			if errors.Is(err, repository.ErrDuplicateISBN) {
				logger.Info("Skipping existing title", slog.String("isbn", book.ISBN), slog.String("title", book.Title))
				skipped++

				continue
			}

			return errors.Wrapf(err, "failed to import %q", book.Title)
		}

		imported++
	}

	logger.Info("Import complete",
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}

func readImportFile(logger *slog.Logger, filePath string) ([]bookRecord, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat import file")
	}

	checksum, err := util.CalculateFileChecksum(filePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Reading import file",
		slog.String("path", filePath),
		slog.String("size", util.FormatBytes(info.Size())),
		slog.String("sha256", checksum),
	)

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read import file")
	}

	var records []bookRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "failed to parse import file")
	}

	return records, nil
}

func toBook(record bookRecord) (*entity.Book, error) {
	category := entity.Category(record.Category)
	if !category.IsValid() {
		return nil, errors.Errorf("unknown category %q", record.Category)
	}
	if record.TotalCopies < 1 {
		return nil, errors.New("total copies must be at least 1")
	}
	if record.AvailableCopies < 0 || record.AvailableCopies > record.TotalCopies {
		return nil, errors.New("available copies must be between 0 and total copies")
	}

	book := &entity.Book{
		Title:           record.Title,
		Author:          record.Author,
		ISBN:            record.ISBN,
		Description:     record.Description,
		Category:        category,
		TotalCopies:     record.TotalCopies,
		AvailableCopies: record.AvailableCopies,
		Pages:           record.Pages,
	}
	if record.PublicationDate != "" {
		publicationDate, err := time.Parse(dateLayout, record.PublicationDate)
		if err != nil {
			return nil, errors.Wrap(err, "invalid publication date")
		}
		book.PublicationDate = publicationDate
	}

	return book, nil
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db.Session(&gorm.Session{SkipDefaultTransaction: true}), nil
}

func closeDB(logger *slog.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}
}
