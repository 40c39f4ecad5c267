// Package realtime implementa el feed de cambios sobre Redis pub/sub.
// Cada escritura relevante (mensaje nuevo, perfil actualizado) se publica como
// JSON en un canal Redis; una única suscripción por proceso decodifica y
// reparte a los canales Go de las sesiones activas. El feed entrega todo sin
// filtrar: el aislamiento territorial se re-aplica en cada sesión.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
	"github.com/caucamais/MAIS-Platform/pkg/config"
	"github.com/caucamais/MAIS-Platform/pkg/logger"
)

// Canales Redis del feed.
const (
	channelMessages = "realtime:messages"
	channelProfiles = "realtime:user_profiles"
)

// NewClient crea el cliente Redis del feed.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

var _ repository.RealtimeFeed = (*Feed)(nil)

// Feed hub de eventos en tiempo real sobre Redis pub/sub.
type Feed struct {
	client *redis.Client
	log    *logger.Logger

	mu   sync.Mutex
	subs map[string]chan repository.Event

	pubsub *redis.PubSub
}

// NewFeed construye el hub. Llamar Start antes de usar Subscribe.
func NewFeed(client *redis.Client, log *logger.Logger) *Feed {
	return &Feed{
		client: client,
		log:    log,
		subs:   make(map[string]chan repository.Event),
	}
}

// Start abre la suscripción Redis y lanza la goroutine de reparto.
// El contexto controla la vida del bucle; cancelarlo detiene el reparto.
func (f *Feed) Start(ctx context.Context) error {
	if err := f.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	f.pubsub = f.client.Subscribe(ctx, channelMessages, channelProfiles)
	go f.dispatch(ctx)
	return nil
}

// dispatch drena la suscripción Redis y reparte a los suscriptores locales.
func (f *Feed) dispatch(ctx context.Context) {
	ch := f.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			ev, err := decodeEvent(msg.Channel, []byte(msg.Payload))
			if err != nil {
				f.log.Warn().Err(err).Str("channel", msg.Channel).Msg("evento realtime ilegible, descartado")
				continue
			}
			f.fanout(ev)
		}
	}
}

func (f *Feed) fanout(ev repository.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, sub := range f.subs {
		select {
		case sub <- ev:
		default:
			// Suscriptor con el buffer lleno: se descarta el evento para no
			// bloquear el reparto al resto de sesiones.
			f.log.Warn().Str("subscriber", id).Str("entity", ev.Entity).Msg("buffer de suscriptor lleno, evento descartado")
		}
	}
}

// Subscribe registra un suscriptor y devuelve su canal más la cancelación.
// Cancelar elimina el registro y cierra el canal (fin de la suscripción).
func (f *Feed) Subscribe(id string) (<-chan repository.Event, func()) {
	ch := make(chan repository.Event, 64)
	f.mu.Lock()
	// Si ya había una suscripción con ese id, se reemplaza y se cierra la vieja.
	if old, ok := f.subs[id]; ok {
		close(old)
	}
	f.subs[id] = ch
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if cur, ok := f.subs[id]; ok && cur == ch {
			delete(f.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Close cierra la suscripción Redis y todos los canales locales.
func (f *Feed) Close() error {
	f.mu.Lock()
	for id, sub := range f.subs {
		close(sub)
		delete(f.subs, id)
	}
	f.mu.Unlock()
	if f.pubsub != nil {
		return f.pubsub.Close()
	}
	return nil
}

// decodeEvent convierte un payload Redis en un evento de dominio.
func decodeEvent(channel string, payload []byte) (repository.Event, error) {
	switch channel {
	case channelMessages:
		var w wireMessage
		if err := json.Unmarshal(payload, &w); err != nil {
			return repository.Event{}, fmt.Errorf("decode mensaje: %w", err)
		}
		return repository.Event{
			Entity:  repository.EventEntityMessage,
			Action:  repository.EventActionInsert,
			Message: w.toEntity(),
		}, nil
	case channelProfiles:
		var w wireUser
		if err := json.Unmarshal(payload, &w); err != nil {
			return repository.Event{}, fmt.Errorf("decode perfil: %w", err)
		}
		return repository.Event{
			Entity: repository.EventEntityUserProfile,
			Action: repository.EventActionUpdate,
			User:   w.toEntity(),
		}, nil
	}
	return repository.Event{}, fmt.Errorf("canal desconocido: %s", channel)
}
