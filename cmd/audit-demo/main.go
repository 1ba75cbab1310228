package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activitymetrics "adms/internal/activity/metrics"
	"adms/internal/activity/models"
	"adms/internal/activity/service"
	"adms/internal/activity/store/memory"
	mattermodels "adms/internal/matter/models"
	usermodels "adms/internal/user/models"
	"adms/internal/platform/config"
	"adms/internal/platform/logger"
	id "adms/pkg/domain"
)

func main() {
	log := logger.New()
	config.FromEnv().Apply()

	metrics := activitymetrics.New()
	store := memory.NewInMemoryStore()
	recorder := service.New(store,
		service.WithLogger(log),
		service.WithMetrics(metrics),
	)

	// Metrics server in background
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		fmt.Println("Metrics available at http://localhost:9090/metrics")
		if err := http.ListenAndServe(":9090", nil); err != nil {
			log.Error("metrics server failed", "error", err)
		}
	}()

	ctx := context.Background()
	matter := mattermodels.Matter{
		ID:          id.MatterID(uuid.MustParse("11111111-1111-1111-1111-111111111111")),
		Description: "Smith Family Trust",
	}
	clerk := usermodels.User{
		ID:   id.UserID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000001")),
		Name: "Jane Cooper",
	}

	fmt.Println("\n=== Audit Recorder Demo ===")

	fmt.Println("1. Recording a matter lifecycle...")
	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{models.ActivityCreated, models.ActivitySaved, models.ActivityViewed} {
		a, err := recorder.Record(ctx, matter.Ref(), models.SeededActivityID(name), clerk.ID, base.Add(time.Duration(i)*time.Minute))
		if err != nil {
			fmt.Printf("   %s failed: %v\n", name, err)
			continue
		}
		fmt.Printf("   recorded %s at %s\n", name, a.CreatedAt().Format(time.RFC3339))
	}

	fmt.Println("\n2. Rejecting an invalid occurrence (future timestamp)...")
	if _, err := recorder.Record(ctx, matter.Ref(), models.SeededViewed, clerk.ID, time.Now().UTC().Add(time.Hour)); err != nil {
		fmt.Printf("   rejected as expected: %v\n", err)
	}

	fmt.Println("\n3. Rejecting a referential mismatch...")
	prepared, err := models.NewAssociation(matter.Ref(), models.SeededSaved, clerk.ID, base.Add(5*time.Minute))
	if err != nil {
		log.Error("fixture construction failed", "error", err)
		return
	}
	wrongUser := usermodels.User{ID: id.UserID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000002")), Name: "Alex Reid"}
	if err := recorder.RecordPrepared(ctx, prepared.WithUser(wrongUser)); err != nil {
		fmt.Printf("   rejected as expected: %v\n", err)
	}

	fmt.Println("\n4. Rendering the trail...")
	rows, err := recorder.Trail(ctx, matter.Ref())
	if err != nil {
		log.Error("trail listing failed", "error", err)
		return
	}
	trail := models.NewTrail()
	for _, a := range rows {
		trail.Append(a.WithSubjectRecord(matter).WithUser(clerk))
	}
	for _, line := range trail.Render("(unknown)") {
		fmt.Println("   " + line)
	}

	fmt.Println("\nFilter metrics with: curl -s http://localhost:9090/metrics | grep adms_audit")
	fmt.Println("Press Ctrl+C to exit...")
	select {}
}
