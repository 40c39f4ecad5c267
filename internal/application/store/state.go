// Package store mantiene el conjunto de trabajo visible para una sesión:
// el perfil propio, los usuarios, los mensajes y las finanzas que el evaluador
// de permisos deja pasar. Un solo escritor (la goroutine despachadora de la
// sesión más las operaciones de la propia sesión); los lectores HTTP acceden
// bajo RLock y reciben copias de los slices.
package store

import (
	"sync"
	"time"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// Notification aviso en memoria para la sesión (ej. mensaje urgente recibido).
type Notification struct {
	ID        string
	Type      string // urgent_message
	Text      string
	SenderID  string
	CreatedAt time.Time
}

const maxNotifications = 50

// State estado observable de una sesión autenticada.
type State struct {
	mu            sync.RWMutex
	current       *entity.User
	users         []*entity.User
	messages      []*entity.Message // más reciente primero
	finances      []*entity.CampaignFinance
	notifications []Notification
	loadError     string // vacío = carga limpia; mensaje genérico si alguna consulta falló
}

// New crea el estado de sesión con el usuario actual.
func New(current *entity.User) *State {
	return &State{current: current}
}

// CurrentUser devuelve una copia del perfil de la sesión, o nil si fue limpiado.
func (s *State) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SetLoaded aplica el resultado de la carga inicial en una sola sección crítica.
func (s *State) SetLoaded(users []*entity.User, messages []*entity.Message, finances []*entity.CampaignFinance, loadError string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.messages = messages
	s.finances = finances
	s.loadError = loadError
}

// LoadError mensaje genérico de error de carga ("" si todo cargó).
func (s *State) LoadError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadError
}

// Users devuelve una copia del listado de usuarios visibles.
func (s *State) Users() []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// Messages devuelve una copia del listado de mensajes, más reciente primero.
func (s *State) Messages() []*entity.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Finances devuelve una copia del listado financiero visible.
func (s *State) Finances() []*entity.CampaignFinance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.CampaignFinance, len(s.finances))
	copy(out, s.finances)
	return out
}

// MessageByID busca un mensaje por id (nil si no está en el conjunto visible).
func (s *State) MessageByID(id string) *entity.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// PrependMessage antepone un mensaje nuevo (más reciente primero). Si ya existe
// un mensaje con ese id no hace nada: la llegada duplicada de un mismo evento
// no debe duplicar la secuencia. Devuelve true si el mensaje se añadió.
// Se guarda una copia propia: el feed entrega el mismo puntero a todas las
// sesiones y cada almacén debe ser dueño de lo que muta.
func (s *State) PrependMessage(m *entity.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.messages {
		if existing.ID == m.ID {
			return false
		}
	}
	cp := *m
	cp.ReadBy = append([]string(nil), m.ReadBy...)
	s.messages = append([]*entity.Message{&cp}, s.messages...)
	return true
}

// MarkMessageRead aplica la marca de lectura local. Idempotente: devuelve true
// solo si read_by cambió. Mutación optimista; el remoto se escribe aparte.
// Copy-on-write: la entrada se reemplaza por una copia con el id anexado, de
// modo que los punteros ya entregados a lectores nunca mutan bajo sus pies.
func (s *State) MarkMessageRead(messageID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID != messageID {
			continue
		}
		if m.IsReadBy(userID) {
			return false
		}
		cp := *m
		cp.ReadBy = append(append([]string(nil), m.ReadBy...), userID)
		s.messages[i] = &cp
		return true
	}
	return false
}

// ApplyUserUpdate reemplaza en sitio la entrada con el mismo id (el orden de
// usuarios es irrelevante). Si el actualizado es el usuario de la sesión, la
// referencia propia se refresca en la misma sección crítica: ningún lector
// observa un "yo" desactualizado junto a un listado ya actualizado.
func (s *State) ApplyUserUpdate(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = u
			break
		}
	}
	if s.current != nil && s.current.ID == u.ID {
		s.current = u
	}
}

// AddNotification encola un aviso (cola acotada, descarta el más antiguo).
func (s *State) AddNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
}

// Notifications devuelve y vacía la cola de avisos pendientes.
func (s *State) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}

// Clear vacía los tres almacenes y la referencia propia en una sola sección
// crítica. Se invoca en el cierre de sesión antes de soltar la referencia a la
// sesión, de modo que ningún observador vea datos viejos en estado anónimo.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.messages = nil
	s.finances = nil
	s.notifications = nil
	s.current = nil
	s.loadError = ""
}
