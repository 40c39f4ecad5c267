package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caucamais/MAIS-Platform/internal/application/store"
	"github.com/caucamais/MAIS-Platform/internal/domain"
	"github.com/caucamais/MAIS-Platform/internal/domain/access"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
	"github.com/caucamais/MAIS-Platform/pkg/jwt"
	"github.com/caucamais/MAIS-Platform/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Manager coordinador de sesiones: autentica, construye el conjunto de trabajo
// de cada sesión, lo mantiene al día vía el feed y lo desmonta al cerrar.
type Manager struct {
	users    repository.UserRepository
	messages repository.MessageRepository
	finances repository.FinanceRepository
	feed     repository.RealtimeFeed
	jwtCfg   JWTConfig
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session // por id de usuario
}

// NewManager construye el coordinador de sesiones.
func NewManager(
	users repository.UserRepository,
	messages repository.MessageRepository,
	finances repository.FinanceRepository,
	feed repository.RealtimeFeed,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *Manager {
	return &Manager{
		users:    users,
		messages: messages,
		finances: finances,
		feed:     feed,
		jwtCfg:   jwtCfg,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// LoginResult sesión establecida más su token.
type LoginResult struct {
	Token   string
	Session *Session
}

// Login verifica credenciales, establece la sesión con su carga inicial y
// devuelve el JWT. Credenciales malas o perfil ausente devuelven errores de
// dominio con mensaje legible; ninguno escapa como pánico.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := m.users.GetByEmail(ctx, email)
	if err != nil {
		m.log.Error().Err(err).Msg("consulta de perfil en login")
		return nil, domain.ErrDataLoad
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	sess := m.establish(ctx, u)

	// Última entrada: escritura fire-and-forget, el fallo solo se registra.
	// No pasa por la guarda de vigencia: es idempotente, no toca estado de
	// sesión y puede aterrizar después del cierre sin efecto observable.
	go func() {
		wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.users.UpdateLastLogin(wctx, u.ID); err != nil {
			m.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo actualizar last_login")
		}
	}()

	token, err := jwt.Generate(m.jwtCfg.Secret, u.ID, string(u.Role), string(u.TerritoryZone), m.jwtCfg.Issuer, m.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Session: sess}, nil
}

// Recover reestablece la sesión de un token previo (arranque de proceso o
// evento externo de autenticación). Si la sesión ya está activa para el mismo
// usuario es un no-op idempotente; si el perfil no existe, falla como
// credencial inválida (perfil ausente no es un estado distinto).
func (m *Manager) Recover(ctx context.Context, userID string) (*Session, error) {
	if sess, ok := m.Current(userID); ok {
		return sess, nil
	}
	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		m.log.Error().Err(err).Str("user_id", userID).Msg("consulta de perfil en recuperación de sesión")
		return nil, domain.ErrDataLoad
	}
	if u == nil {
		return nil, domain.ErrProfileNotFound
	}
	return m.establish(ctx, u), nil
}

// Current devuelve la sesión activa del usuario, si existe.
func (m *Manager) Current(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	if !ok || sess.Closed() {
		return nil, false
	}
	return sess, true
}

// establish crea (o reusa) la sesión y ejecuta la carga inicial. La suscripción
// al feed arranca antes de la carga para no perder eventos; la deduplicación y
// el reemplazo en sitio absorben el solape entre ambos.
func (m *Manager) establish(ctx context.Context, u *entity.User) *Session {
	m.mu.Lock()
	if existing, ok := m.sessions[u.ID]; ok && !existing.Closed() {
		m.mu.Unlock()
		return existing
	}
	sess := newSession(u)
	events, cancel := m.feed.Subscribe(u.ID)
	sess.cancelSub = cancel
	m.sessions[u.ID] = sess
	m.mu.Unlock()

	go sess.run(events)
	m.loadData(ctx, sess, u)
	sess.status.Store(StatusAuthenticated)
	return sess
}

// loadData ejecuta las tres consultas de alcance de la sesión. Un fallo deja
// ese almacén vacío y marca el error genérico de carga; la sesión sobrevive.
func (m *Manager) loadData(ctx context.Context, sess *Session, u *entity.User) {
	var loadError string

	allUsers, err := m.users.ListAll(ctx)
	if err != nil {
		m.log.Error().Err(err).Str("user_id", u.ID).Msg("carga de usuarios")
		loadError = domain.ErrDataLoad.Error()
		allUsers = nil
	}
	// El backend entrega el listado completo; el recorte territorial del
	// equipo se aplica aquí con el mismo evaluador que usa la despachadora.
	visible := make([]*entity.User, 0, len(allUsers))
	for _, other := range allUsers {
		if other.ID == u.ID || access.CanSeeUser(u, other) {
			visible = append(visible, other)
		}
	}

	msgs, err := m.messages.ListVisible(ctx, u.Role, u.TerritoryZone)
	if err != nil {
		m.log.Error().Err(err).Str("user_id", u.ID).Msg("carga de mensajes")
		loadError = domain.ErrDataLoad.Error()
		msgs = nil
	}
	// Mismo evaluador que la despachadora: un registro fuera de contrato del
	// backend tampoco entra al almacén.
	visibleMsgs := make([]*entity.Message, 0, len(msgs))
	for _, msg := range msgs {
		if access.CanSeeMessage(u, msg) {
			visibleMsgs = append(visibleMsgs, msg)
		}
	}

	fins, err := m.finances.ListVisible(ctx, u.Role, u.TerritoryZone)
	if err != nil {
		m.log.Error().Err(err).Str("user_id", u.ID).Msg("carga de finanzas")
		loadError = domain.ErrDataLoad.Error()
		fins = nil
	}
	visibleFins := make([]*entity.CampaignFinance, 0, len(fins))
	for _, f := range fins {
		if access.CanSeeFinance(u, f) {
			visibleFins = append(visibleFins, f)
		}
	}

	// Guarda de vigencia: si la sesión se cerró durante la carga, una
	// respuesta tardía no debe resucitar estado ya limpiado.
	if sess.Closed() {
		return
	}
	if cur, ok := m.Current(u.ID); !ok || cur != sess {
		return
	}
	sess.state.SetLoaded(visible, visibleMsgs, visibleFins, loadError)
}

// Logout cierra la sesión del usuario: vacía los almacenes de forma síncrona
// y después suelta la referencia. Idempotente si no hay sesión.
func (m *Manager) Logout(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		sess.teardown()
		delete(m.sessions, userID)
	}
	m.mu.Unlock()
	if ok {
		m.log.Info().Str("user_id", userID).Msg("sesión cerrada")
	}
}

// UpdatePassword valida la política, escribe el nuevo hash y solo entonces
// refleja is_password_changed en el estado local (exactamente una vez).
func (m *Manager) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	sess, ok := m.Current(userID)
	if !ok {
		return domain.ErrNoSession
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := m.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		// El estado local queda intacto: solo se muta tras éxito remoto.
		return err
	}
	me := sess.User()
	if me == nil {
		return nil
	}
	me.IsPasswordChanged = true
	me.UpdatedAt = time.Now()
	sess.state.ApplyUserUpdate(me)
	m.publishUser(me)
	return nil
}

// ProfileUpdate campos de perfil editables; nil = sin cambio.
type ProfileUpdate struct {
	FullName     *string
	Municipality *string
	Phone        *string
	AvatarURL    *string
}

// UpdateProfile escribe primero en el backend y muta el estado local solo
// tras el éxito remoto. Devuelve el perfil resultante.
func (m *Manager) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*entity.User, error) {
	sess, ok := m.Current(userID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	me := sess.User()
	if me == nil {
		return nil, domain.ErrNoSession
	}
	if upd.FullName != nil {
		me.FullName = *upd.FullName
	}
	if upd.Municipality != nil {
		me.Municipality = *upd.Municipality
	}
	if upd.Phone != nil {
		me.Phone = *upd.Phone
	}
	if upd.AvatarURL != nil {
		me.AvatarURL = *upd.AvatarURL
	}
	if me.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := m.users.UpdateProfile(ctx, me); err != nil {
		return nil, err
	}
	me.UpdatedAt = time.Now()
	sess.state.ApplyUserUpdate(me)
	m.publishUser(me)
	return me, nil
}

// SendMessageInput datos de un mensaje a enviar. TargetZone nil = difusión
// general (solo comité nacional); con zona exige acceso territorial a ella.
type SendMessageInput struct {
	Content        string
	TargetZone     *entity.Zone
	IsUrgent       bool
	IsConfidential bool
}

// SendMessage valida permisos de envío, persiste el mensaje y lo difunde por
// el feed. El almacén local no se toca: la propia sesión recibirá su evento.
func (m *Manager) SendMessage(ctx context.Context, userID string, in SendMessageInput) (*entity.Message, error) {
	sess, ok := m.Current(userID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	me := sess.User()
	if me == nil {
		return nil, domain.ErrNoSession
	}
	if in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetZone == nil {
		// La difusión a todas las zonas es potestad del comité nacional.
		if me.Role != entity.RoleComiteEjecutivoNacional {
			return nil, domain.ErrForbidden
		}
	} else {
		if !in.TargetZone.Valid() {
			return nil, domain.ErrInvalidInput
		}
		if !access.HasZoneAccess(me, *in.TargetZone) {
			return nil, domain.ErrForbidden
		}
	}

	msg := &entity.Message{
		ID:             uuid.New().String(),
		SenderID:       me.ID,
		SenderName:     me.FullName,
		SenderRole:     me.Role,
		Content:        in.Content,
		TerritoryZone:  in.TargetZone,
		IsUrgent:       in.IsUrgent,
		IsConfidential: in.IsConfidential,
		CreatedAt:      time.Now(),
		ReadBy:         []string{},
	}
	if err := m.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := m.feed.PublishMessage(ctx, msg); err != nil {
		// Persistido pero sin difusión en vivo: las sesiones lo verán en su
		// próxima carga inicial.
		m.log.Warn().Err(err).Str("message_id", msg.ID).Msg("no se pudo difundir el mensaje")
	}
	return msg, nil
}

// MarkMessageRead mutación local optimista e inmediata más escritura remota
// fire-and-forget. Si el remoto falla solo se registra; el estado local no se
// revierte (comportamiento vigente del producto).
func (m *Manager) MarkMessageRead(ctx context.Context, userID, messageID string) error {
	sess, ok := m.Current(userID)
	if !ok {
		return domain.ErrNoSession
	}
	if sess.State().MessageByID(messageID) == nil {
		return domain.ErrNotFound
	}
	sess.State().MarkMessageRead(messageID, userID)

	// Igual que last_login, la escritura remota queda fuera de la guarda de
	// vigencia: marcar lectura es idempotente en el backend.
	go func() {
		wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.messages.MarkRead(wctx, messageID, userID); err != nil {
			m.log.Warn().Err(err).Str("message_id", messageID).Str("user_id", userID).Msg("no se pudo persistir la marca de lectura")
		}
	}()
	return nil
}

// Notifications drena los avisos pendientes de la sesión.
func (m *Manager) Notifications(userID string) ([]store.Notification, error) {
	sess, ok := m.Current(userID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	return sess.State().Notifications(), nil
}

// CloseAll desmonta todas las sesiones (apagado del proceso).
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		sess.teardown()
		delete(m.sessions, id)
	}
}

func (m *Manager) publishUser(u *entity.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.feed.PublishUserUpdate(ctx, u); err != nil {
		m.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo difundir la actualización de perfil")
	}
}
