// Package session implementa el ciclo de vida de sesiones autenticadas y el
// despacho de eventos en tiempo real hacia los almacenes de cada sesión.
//
// No hay estado global: el Manager es el coordinador de nivel superior, se
// construye explícitamente y se inyecta a los consumidores. Cada sesión tiene
// una única goroutine escritora (su despachadora) más las operaciones propias;
// la corrección ante callbacks intercalados depende de la guarda de vigencia
// (staleness guard): toda aplicación asíncrona verifica que la sesión siga
// siendo la activa antes de escribir.
package session

import (
	"sync/atomic"
	"time"

	"github.com/caucamais/MAIS-Platform/internal/application/store"
	"github.com/caucamais/MAIS-Platform/internal/domain/access"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
	"github.com/google/uuid"
)

// Status estado del ciclo de vida de una sesión. Solo existen estados de
// sesión viva: "sin inicializar" y "anónimo" no se representan aquí porque en
// el servidor equivalen a la ausencia de la sesión en el Manager
// (Manager.Current devuelve false).
type Status string

const (
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
)

// Session sesión activa de un usuario: su conjunto de trabajo más el despacho
// de eventos en vivo. Se crea solo a través del Manager.
type Session struct {
	userID    string
	state     *store.State
	status    atomic.Value // Status
	closed    atomic.Bool
	cancelSub func()
	done      chan struct{}
}

func newSession(u *entity.User) *Session {
	s := &Session{
		userID: u.ID,
		state:  store.New(u),
		done:   make(chan struct{}),
	}
	s.status.Store(StatusLoading)
	return s
}

// UserID id del usuario de la sesión.
func (s *Session) UserID() string { return s.userID }

// State acceso de lectura al conjunto de trabajo de la sesión.
func (s *Session) State() *store.State { return s.state }

// User copia del perfil actual (nil si la sesión fue limpiada).
func (s *Session) User() *entity.User { return s.state.CurrentUser() }

// Status estado actual del ciclo de vida.
func (s *Session) Status() Status { return s.status.Load().(Status) }

// Closed reporta si la sesión fue cerrada. Las aplicaciones asíncronas deben
// consultarlo antes de escribir: una respuesta tardía de una sesión difunta no
// puede resucitar estado ya limpiado.
func (s *Session) Closed() bool { return s.closed.Load() }

// run es la despachadora: drena el canal de eventos hasta que se cierra.
// El feed entrega todo sin filtrar; aquí se re-aplica el evaluador de permisos
// y lo que no pasa se descarta en silencio (no es un error ni se encola).
func (s *Session) run(events <-chan repository.Event) {
	defer close(s.done)
	for ev := range events {
		if s.closed.Load() {
			continue
		}
		me := s.state.CurrentUser()
		if me == nil {
			continue
		}
		switch {
		case ev.Entity == repository.EventEntityMessage && ev.Action == repository.EventActionInsert:
			s.applyMessageInsert(me, ev.Message)
		case ev.Entity == repository.EventEntityUserProfile && ev.Action == repository.EventActionUpdate:
			s.applyUserUpdate(me, ev.User)
		}
	}
}

func (s *Session) applyMessageInsert(me *entity.User, m *entity.Message) {
	if m == nil || !access.CanSeeMessage(me, m) {
		return
	}
	if !s.state.PrependMessage(m) {
		// llegada duplicada del mismo evento
		return
	}
	if m.IsUrgent && m.SenderID != me.ID {
		s.state.AddNotification(store.Notification{
			ID:        uuid.New().String(),
			Type:      "urgent_message",
			Text:      "Mensaje urgente de " + m.SenderName,
			SenderID:  m.SenderID,
			CreatedAt: time.Now(),
		})
	}
}

func (s *Session) applyUserUpdate(me *entity.User, u *entity.User) {
	if u == nil {
		return
	}
	// El propio perfil siempre se aplica; el resto solo si es visible por zona.
	if u.ID != me.ID && !access.CanSeeUser(me, u) {
		return
	}
	s.state.ApplyUserUpdate(u)
}

// teardown cierra la sesión: marca el cierre, vacía los almacenes y después
// cancela la suscripción. El orden importa: los almacenes quedan vacíos antes
// de que el Manager suelte la referencia, así ningún observador ve datos
// autenticados junto a un estado anónimo.
func (s *Session) teardown() {
	s.closed.Store(true)
	s.state.Clear()
	if s.cancelSub != nil {
		s.cancelSub()
	}
}
