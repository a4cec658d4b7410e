// Seeds the playbooks table with the standard operational catalog.
// Safe to re-run: rows are upserted by title.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"maxops/maxops/config"
	"maxops/maxops/sources/psql"
	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/utils/color"
	"maxops/maxops/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		fmt.Println(color.ColorError("database connection error: " + err.Error()))
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	playbookDAO := dao.NewPlaybookDAO(db.DB)

	var createdCount, updatedCount, failedCount int
	for i := range samplePlaybooks {
		pb := samplePlaybooks[i]
		created, err := playbookDAO.UpsertByTitle(ctx, &pb)
		if err != nil {
			// a bad row must not sink the rest of the batch
			failedCount++
			fmt.Println(color.ColorWarning("skipped: " + pb.Title + " (" + err.Error() + ")"))
			logging.ErrorLogger.Error("playbook upsert failed",
				zap.String("title", pb.Title), zap.Error(err))
			continue
		}
		if created {
			createdCount++
			fmt.Println(color.ColorInfo("created: " + pb.Title))
		} else {
			updatedCount++
			fmt.Println(color.ColorInfo("updated: " + pb.Title))
		}
	}

	summary := fmt.Sprintf("done: %d created, %d updated, %d skipped", createdCount, updatedCount, failedCount)
	if failedCount > 0 {
		fmt.Println(color.ColorWarning(summary))
	} else {
		fmt.Println(color.ColorFinalSuccess(summary))
	}
}
