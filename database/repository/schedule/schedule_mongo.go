package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"viavela/database"
	"viavela/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	scheduleColl *mongo.Collection
	blockedColl  *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.GetDatabase()
	return &MongoScheduleRepo{
		scheduleColl: db.Collection("schedules"),
		blockedColl:  db.Collection("blocked_dates"),
	}
}

func (repo *MongoScheduleRepo) GetWeekly(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.ProviderSchedule
	filter := bson.M{"provider_id": providerID}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&sched); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for provider %s: %w", providerID, err)
	}
	return &sched, nil
}

func (repo *MongoScheduleRepo) UpsertWeekly(ctx context.Context, providerID string, weekly models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	update := bson.M{"$set": bson.M{
		"provider_id": providerID,
		"weekly":      weekly,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.scheduleColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting schedule for provider %s: %w", providerID, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetBlockedDates(ctx context.Context, providerID string) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	cursor, err := repo.blockedColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked dates: %w", err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedDate
	for cursor.Next(ctx) {
		var b models.BlockedDate
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding blocked date: %w", err)
		}
		blocked = append(blocked, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return blocked, nil
}

func (repo *MongoScheduleRepo) AddBlockedDate(ctx context.Context, entry models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": entry.ProviderID, "date": entry.Date}
	update := bson.M{"$set": bson.M{
		"provider_id": entry.ProviderID,
		"date":        entry.Date,
		"reason":      entry.Reason,
		"created_at":  entry.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.blockedColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error adding blocked date %s: %w", entry.Date, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) RemoveBlockedDate(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "date": date}
	if _, err := repo.blockedColl.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("error removing blocked date %s: %w", date, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) PruneBlockedBefore(ctx context.Context, cutoff string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Dates are stored as "2006-01-02" strings, so a lexicographic $lt is a
	// correct calendar comparison.
	filter := bson.M{"date": bson.M{"$lt": cutoff}}
	res, err := repo.blockedColl.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error pruning blocked dates before %s: %w", cutoff, err)
	}
	return res.DeletedCount, nil
}
