package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReminderWindow is how far ahead the scanner looks for due dates.
const ReminderWindow = 7 * 24 * time.Hour

// StartReminderWorker scans for due car documents and lead follow-ups on
// a fixed interval until ctx is cancelled, persisting each reminder and
// broadcasting it over the hub.
func StartReminderWorker(ctx context.Context, hub *Hub, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	scanAndNotify(ctx, hub)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scanAndNotify(ctx, hub)
		}
	}
}

func scanAndNotify(ctx context.Context, hub *Hub) {
	scanCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	reminders := append(scanCars(scanCtx), scanLeads(scanCtx)...)
	for _, reminder := range reminders {
		if saveReminder(scanCtx, reminder) {
			if data, err := json.Marshal(reminder); err == nil {
				hub.Broadcast(data)
			}
		}
	}
}

// carDeadlines maps reminder kinds onto a car's expiry fields.
func carDeadlines(car models.Car) map[string]string {
	return map[string]string{
		"insurance": car.Insurance,
		"pollution": car.Pollution,
		"service":   car.ServiceReminder,
	}
}

func scanCars(ctx context.Context) []models.Reminder {
	cars, err := utils.FindAndDecode[models.Car](ctx, db.CarCollection, bson.M{})
	if err != nil {
		log.Println("reminder scan: cars:", err)
		return nil
	}

	now := time.Now().UTC()
	reminders := []models.Reminder{}
	for _, car := range cars {
		for kind, raw := range carDeadlines(car) {
			due, ok := utils.ParseTimestamp(raw)
			if !ok || !dueWithinWindow(now, due) {
				continue
			}
			reminders = append(reminders, models.Reminder{
				ReminderID: utils.GetUUID(),
				Kind:       kind,
				EntityID:   car.CarID,
				Title:      fmt.Sprintf("%s due for %s", kindLabel(kind), car.CarNumber),
				Body:       fmt.Sprintf("%s for car %s is due on %s", kindLabel(kind), car.CarNumber, due.Format("02 Jan 2006")),
				DueAt:      due,
				CreatedAt:  now,
			})
		}
	}
	return reminders
}

func scanLeads(ctx context.Context) []models.Reminder {
	filter := bson.M{"follow_up_status": bson.M{"$ne": "Completed"}}
	leads, err := utils.FindAndDecode[models.Lead](ctx, db.LeadCollection, filter)
	if err != nil {
		log.Println("reminder scan: leads:", err)
		return nil
	}

	now := time.Now().UTC()
	reminders := []models.Reminder{}
	for _, lead := range leads {
		due, ok := utils.ParseTimestamp(lead.FollowUpDate)
		if !ok || !dueWithinWindow(now, due) {
			continue
		}
		reminders = append(reminders, models.Reminder{
			ReminderID: utils.GetUUID(),
			Kind:       "followup",
			EntityID:   lead.LeadID,
			Title:      fmt.Sprintf("Follow up with %s", lead.Name),
			Body:       fmt.Sprintf("Follow-up with %s (%s) is due on %s", lead.Name, lead.Phone, due.Format("02 Jan 2006")),
			DueAt:      due,
			CreatedAt:  now,
		})
	}
	return reminders
}

// dueWithinWindow reports whether due falls inside [now, now+window].
// Already-past dates are excluded; those reminders fired on earlier scans.
func dueWithinWindow(now, due time.Time) bool {
	return !due.Before(now) && due.Sub(now) <= ReminderWindow
}

// saveReminder persists a reminder unless one for the same entity, kind
// and due date already exists. Returns true when the reminder is new.
func saveReminder(ctx context.Context, reminder models.Reminder) bool {
	filter := bson.M{
		"kind":     reminder.Kind,
		"entityid": reminder.EntityID,
		"due_at":   reminder.DueAt,
	}
	update := bson.M{"$setOnInsert": reminder}
	opts := options.Update().SetUpsert(true)

	res, err := db.NotificationCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Println("reminder save:", err)
		return false
	}
	return res.UpsertedCount > 0
}

func kindLabel(kind string) string {
	switch kind {
	case "insurance":
		return "Insurance"
	case "pollution":
		return "Pollution certificate"
	case "service":
		return "Service"
	default:
		return "Reminder"
	}
}
