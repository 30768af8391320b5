package mq

import (
	"context"
	"encoding/json"
	"log"

	"tripdesk/models"
	"tripdesk/rdx"
)

const eventsChannel = "entity-events"

// Emit publishes an entity-change event to Redis. Failures are logged and
// swallowed; a lost cache-invalidation event only means a stale list until
// the next write.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s: %v", eventName, err)
	}
}

// StartCacheWorker drops the cached list for whichever entity changed.
// List handlers repopulate the cache on the next read.
func StartCacheWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[CacheWorker] listening for entity events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CacheWorker] failed to parse event: %v", err)
			continue
		}

		key := "list:" + event.EntityType
		if _, err := rdx.RdxDel(key); err != nil {
			log.Printf("[CacheWorker] failed to drop %s: %v", key, err)
		}
	}
}
