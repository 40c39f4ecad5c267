package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
	"github.com/caucamais/MAIS-Platform/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba del colaborador (backend de datos + feed)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu              sync.Mutex
	byID            map[string]*entity.User
	passwordWrites  []string // ids con password actualizado
	lastLoginWrites []string
	failList        bool
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, context.DeadlineExceeded
	}
	var out []*entity.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLoginWrites = append(f.lastLoginWrites, id)
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwordWrites = append(f.passwordWrites, id)
	if u, ok := f.byID[id]; ok {
		u.PasswordHash = hash
		u.IsPasswordChanged = true
	}
	return nil
}

func (f *fakeUserRepo) passwordWriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.passwordWrites)
}

type fakeMessageRepo struct {
	mu           sync.Mutex
	messages     []*entity.Message
	markReads    [][2]string // (messageID, userID)
	ignoreFilter bool        // simula un backend que desobedece el filtro de zona
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append([]*entity.Message{m}, f.messages...)
	return nil
}

// ListVisible emula el filtro del lado del servidor: difusión o zona exacta.
func (f *fakeMessageRepo) ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Message
	for _, m := range f.messages {
		if f.ignoreFilter || role == entity.RoleComiteEjecutivoNacional || m.TerritoryZone == nil || *m.TerritoryZone == zone {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, messageID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markReads = append(f.markReads, [2]string{messageID, userID})
	return nil
}

func (f *fakeMessageRepo) markReadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.markReads)
}

type fakeFinanceRepo struct {
	mu       sync.Mutex
	finances []*entity.CampaignFinance
}

func (f *fakeFinanceRepo) Create(ctx context.Context, fin *entity.CampaignFinance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finances = append(f.finances, fin)
	return nil
}

func (f *fakeFinanceRepo) ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.CampaignFinance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CampaignFinance
	for _, fin := range f.finances {
		if role == entity.RoleComiteEjecutivoNacional || fin.TerritoryZone == zone {
			cp := *fin
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeFeed entrega eventos sin filtrar a todos los suscriptores, igual que el
// canal real: el filtrado es responsabilidad de cada sesión.
type fakeFeed struct {
	mu   sync.Mutex
	subs map[string]chan repository.Event
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{subs: make(map[string]chan repository.Event)}
}

func (f *fakeFeed) PublishMessage(ctx context.Context, m *entity.Message) error {
	f.Emit(repository.Event{Entity: repository.EventEntityMessage, Action: repository.EventActionInsert, Message: m})
	return nil
}

func (f *fakeFeed) PublishUserUpdate(ctx context.Context, u *entity.User) error {
	f.Emit(repository.Event{Entity: repository.EventEntityUserProfile, Action: repository.EventActionUpdate, User: u})
	return nil
}

func (f *fakeFeed) Subscribe(id string) (<-chan repository.Event, func()) {
	ch := make(chan repository.Event, 64)
	f.mu.Lock()
	f.subs[id] = ch
	f.mu.Unlock()
	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if cur, ok := f.subs[id]; ok && cur == ch {
			delete(f.subs, id)
			close(ch)
		}
	}
}

// Emit inyecta un evento crudo en el stream (como lo haría el backend).
func (f *fakeFeed) Emit(ev repository.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		ch <- ev
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "Segura123"

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

type fixture struct {
	users    *fakeUserRepo
	messages *fakeMessageRepo
	finances *fakeFinanceRepo
	feed     *fakeFeed
	mgr      *session.Manager
}

func zonePtr(z entity.Zone) *entity.Zone { return &z }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := &fakeUserRepo{byID: map[string]*entity.User{
		"ana": {
			ID: "ana", Email: "ana@mais.co", PasswordHash: hashOf(t, testPassword),
			FullName: "Ana Líder", Role: entity.RoleLiderRegional, TerritoryZone: entity.ZonaNorte,
		},
		"berta": {
			ID: "berta", Email: "berta@mais.co", PasswordHash: hashOf(t, testPassword),
			FullName: "Berta Nacional", Role: entity.RoleComiteEjecutivoNacional, TerritoryZone: entity.ZonaCentro,
		},
		"carlos": {
			ID: "carlos", Email: "carlos@mais.co", PasswordHash: hashOf(t, testPassword),
			FullName: "Carlos Sur", Role: entity.RoleLiderComunitario, TerritoryZone: entity.ZonaSur,
		},
	}}
	messages := &fakeMessageRepo{messages: []*entity.Message{
		{ID: "m1", SenderID: "carlos", Content: "solo sur", TerritoryZone: zonePtr(entity.ZonaSur), CreatedAt: time.Now()},
		{ID: "m2", SenderID: "berta", Content: "difusión nacional", CreatedAt: time.Now()},
		{ID: "m3", SenderID: "ana", Content: "solo norte", TerritoryZone: zonePtr(entity.ZonaNorte), CreatedAt: time.Now()},
	}}
	finances := &fakeFinanceRepo{finances: []*entity.CampaignFinance{
		{ID: "f-norte", TerritoryZone: entity.ZonaNorte},
		{ID: "f-sur", TerritoryZone: entity.ZonaSur},
		{ID: "f-centro", TerritoryZone: entity.ZonaCentro},
	}}
	feed := newFakeFeed()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	mgr := session.NewManager(users, messages, finances, feed,
		session.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "mais-test"}, log)
	t.Cleanup(mgr.CloseAll)
	return &fixture{users: users, messages: messages, finances: finances, feed: feed, mgr: mgr}
}

func loginAna(t *testing.T, fx *fixture) *session.Session {
	t.Helper()
	res, err := fx.mgr.Login(context.Background(), "ana@mais.co", testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	return res.Session
}

// ──────────────────────────────────────────────────────────────────────────────
// Login y carga inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.mgr.Login(context.Background(), "ana@mais.co", "equivocada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = fx.mgr.Login(context.Background(), "nadie@mais.co", testPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "email desconocido también es credencial inválida")
}

// Escenario de referencia: líder regional de zona_norte ve m2 (difusión) y m3
// (su zona) pero nunca m1 (zona_sur); sus finanzas son solo las de su zona.
func TestLogin_CargaInicialFiltrada(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	assert.Equal(t, session.StatusAuthenticated, sess.Status())
	assert.Empty(t, sess.State().LoadError())

	msgs := sess.State().Messages()
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	assert.NotContains(t, ids, "m1", "mensaje de zona ajena no debe cargarse")
	assert.Contains(t, ids, "m2", "difusión general debe cargarse")
	assert.Contains(t, ids, "m3", "mensaje de la propia zona debe cargarse")

	fins := sess.State().Finances()
	require.Len(t, fins, 1)
	assert.Equal(t, "f-norte", fins[0].ID)

	// El equipo visible excluye usuarios de otras zonas (salvo el propio).
	for _, u := range sess.State().Users() {
		assert.True(t, u.ID == "ana" || u.TerritoryZone == entity.ZonaNorte,
			"usuario %s fuera de zona no debe ser visible", u.ID)
	}
}

// El comité nacional recibe todas las zonas sin filtro.
func TestLogin_ComiteNacionalVeTodo(t *testing.T) {
	fx := newFixture(t)
	res, err := fx.mgr.Login(context.Background(), "berta@mais.co", testPassword)
	require.NoError(t, err)

	assert.Len(t, res.Session.State().Finances(), 3, "el comité nacional ve las finanzas de todas las zonas")
	assert.Len(t, res.Session.State().Messages(), 3)
	assert.Len(t, res.Session.State().Users(), 3)
}

// El recorte territorial no depende del backend: aunque el listado llegue sin
// filtrar, el evaluador de permisos lo re-aplica antes de poblar el almacén.
func TestLogin_BackendSinFiltroNoCuelaMensajesAjenos(t *testing.T) {
	fx := newFixture(t)
	fx.messages.ignoreFilter = true

	sess := loginAna(t, fx)

	assert.Nil(t, sess.State().MessageByID("m1"), "un mensaje de zona ajena no debe entrar al almacén")
	assert.NotNil(t, sess.State().MessageByID("m2"), "la difusión general sí")
	assert.NotNil(t, sess.State().MessageByID("m3"), "el de la propia zona sí")
}

func TestLogin_FalloDeCargaDejaAlmacenVacio(t *testing.T) {
	fx := newFixture(t)
	fx.users.failList = true

	sess := loginAna(t, fx)

	assert.Empty(t, sess.State().Users(), "el almacén que falló queda vacío")
	assert.NotEmpty(t, sess.State().LoadError(), "debe quedar el error genérico de carga")
	assert.NotEmpty(t, sess.State().Messages(), "los demás almacenes cargan normal")
}

func TestLogin_ActualizaUltimaEntrada(t *testing.T) {
	fx := newFixture(t)
	loginAna(t, fx)
	require.Eventually(t, func() bool {
		fx.users.mu.Lock()
		defer fx.users.mu.Unlock()
		return len(fx.users.lastLoginWrites) == 1
	}, time.Second, 10*time.Millisecond, "last_login debe escribirse fire-and-forget")
}

// Recuperar una sesión ya activa para el mismo usuario es un no-op.
func TestRecover_IdempotenteConSesionActiva(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	again, err := fx.mgr.Recover(context.Background(), "ana")
	require.NoError(t, err)
	assert.Same(t, sess, again, "la sesión activa se reutiliza")
}

func TestRecover_PerfilInexistente(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.mgr.Recover(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho en vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_MensajeDeZonaAjenaSeDescarta(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)
	before := len(sess.State().Messages())

	// Evento en vivo para zona_sur con sesión activa de zona_norte.
	fx.feed.Emit(repository.Event{
		Entity: repository.EventEntityMessage,
		Action: repository.EventActionInsert,
		Message: &entity.Message{
			ID: "m-sur", SenderID: "carlos", Content: "nuevo en sur",
			TerritoryZone: zonePtr(entity.ZonaSur), CreatedAt: time.Now(),
		},
	})
	// Y uno visible justo después, como barrera de sincronización.
	fx.feed.Emit(repository.Event{
		Entity: repository.EventEntityMessage,
		Action: repository.EventActionInsert,
		Message: &entity.Message{
			ID: "m-norte", SenderID: "carlos", Content: "nuevo en norte",
			TerritoryZone: zonePtr(entity.ZonaNorte), CreatedAt: time.Now(),
		},
	})

	require.Eventually(t, func() bool {
		return sess.State().MessageByID("m-norte") != nil
	}, time.Second, 5*time.Millisecond)

	assert.Nil(t, sess.State().MessageByID("m-sur"), "el mensaje de zona ajena se descarta en silencio")
	assert.Equal(t, before+1, len(sess.State().Messages()), "solo el visible se mezcla")
}

func TestDispatch_InsertDuplicadoNoDuplica(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	m := &entity.Message{ID: "m-dup", SenderID: "berta", Content: "difusión", CreatedAt: time.Now()}
	fx.feed.Emit(repository.Event{Entity: repository.EventEntityMessage, Action: repository.EventActionInsert, Message: m})
	fx.feed.Emit(repository.Event{Entity: repository.EventEntityMessage, Action: repository.EventActionInsert, Message: m})

	require.Eventually(t, func() bool {
		return sess.State().MessageByID("m-dup") != nil
	}, time.Second, 5*time.Millisecond)

	count := 0
	for _, got := range sess.State().Messages() {
		if got.ID == "m-dup" {
			count++
		}
	}
	assert.Equal(t, 1, count, "el mismo insert dos veces no debe duplicar la secuencia")
}

func TestDispatch_MensajeUrgenteGeneraAviso(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	fx.feed.Emit(repository.Event{
		Entity: repository.EventEntityMessage,
		Action: repository.EventActionInsert,
		Message: &entity.Message{
			ID: "m-urgente", SenderID: "berta", SenderName: "Berta Nacional",
			Content: "urgente", IsUrgent: true, CreatedAt: time.Now(),
		},
	})

	require.Eventually(t, func() bool {
		return sess.State().MessageByID("m-urgente") != nil
	}, time.Second, 5*time.Millisecond)

	notifs, err := fx.mgr.Notifications("ana")
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "urgent_message", notifs[0].Type)
	assert.Contains(t, notifs[0].Text, "Berta Nacional")
}

// La actualización del propio perfil refresca la referencia de sesión junto
// con el listado: ningún lector ve un "yo" viejo.
func TestDispatch_ActualizacionDePerfilPropio(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	fx.feed.Emit(repository.Event{
		Entity: repository.EventEntityUserProfile,
		Action: repository.EventActionUpdate,
		User: &entity.User{
			ID: "ana", Email: "ana@mais.co", FullName: "Ana Renombrada",
			Role: entity.RoleLiderRegional, TerritoryZone: entity.ZonaNorte,
		},
	})

	require.Eventually(t, func() bool {
		u := sess.User()
		return u != nil && u.FullName == "Ana Renombrada"
	}, time.Second, 5*time.Millisecond)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre de sesión y guarda de vigencia
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaAlmacenesAntesDeAnonimo(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)
	require.NotEmpty(t, sess.State().Messages())

	fx.mgr.Logout("ana")

	_, ok := fx.mgr.Current("ana")
	assert.False(t, ok, "tras logout no hay sesión activa")
	assert.Empty(t, sess.State().Messages(), "los almacenes quedan vacíos")
	assert.Empty(t, sess.State().Users())
	assert.Empty(t, sess.State().Finances())
	assert.Nil(t, sess.User(), "la referencia propia también se limpia")

	// Idempotente.
	fx.mgr.Logout("ana")
}

func TestLogout_EventoTardioNoResucitaEstado(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)
	fx.mgr.Logout("ana")

	// Un evento que llega para la sesión difunta no debe mutar nada.
	fx.feed.Emit(repository.Event{
		Entity:  repository.EventEntityMessage,
		Action:  repository.EventActionInsert,
		Message: &entity.Message{ID: "m-tardio", SenderID: "berta", Content: "tarde", CreatedAt: time.Now()},
	})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sess.State().Messages(), "una respuesta tardía no resucita estado limpiado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Contraseña y perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePassword_PoliticaAntesDeEscribir(t *testing.T) {
	fx := newFixture(t)
	loginAna(t, fx)

	for _, pw := range []string{"corta1A", "sinmayuscula1", "SINMINUSCULA1", "SinDigitos"} {
		err := fx.mgr.UpdatePassword(context.Background(), "ana", pw)
		assert.ErrorIs(t, err, domain.ErrWeakPassword, "contraseña %q debe rechazarse", pw)
	}
	assert.Zero(t, fx.users.passwordWriteCount(), "ninguna escritura remota debe intentarse con contraseña débil")
}

func TestUpdatePassword_MarcaCambioExactamenteUnaVez(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	require.NoError(t, fx.mgr.UpdatePassword(context.Background(), "ana", "NuevaPass123"))
	assert.Equal(t, 1, fx.users.passwordWriteCount())

	u := sess.User()
	require.NotNil(t, u)
	assert.True(t, u.IsPasswordChanged, "is_password_changed debe quedar en true")
}

func TestUpdatePassword_SinSesion(t *testing.T) {
	fx := newFixture(t)
	err := fx.mgr.UpdatePassword(context.Background(), "ana", "NuevaPass123")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestUpdateProfile_RemotoPrimero(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	nombre := "Ana Actualizada"
	u, err := fx.mgr.UpdateProfile(context.Background(), "ana", session.ProfileUpdate{FullName: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Ana Actualizada", u.FullName)
	assert.Equal(t, "Ana Actualizada", sess.User().FullName, "el estado local refleja el cambio tras el éxito remoto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío y lectura de mensajes
// ──────────────────────────────────────────────────────────────────────────────

func TestSendMessage_DifusionSoloComiteNacional(t *testing.T) {
	fx := newFixture(t)
	loginAna(t, fx)

	_, err := fx.mgr.SendMessage(context.Background(), "ana", session.SendMessageInput{Content: "a todos"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "difusión general reservada al comité nacional")

	res, err := fx.mgr.Login(context.Background(), "berta@mais.co", testPassword)
	require.NoError(t, err)
	_ = res
	msg, err := fx.mgr.SendMessage(context.Background(), "berta", session.SendMessageInput{Content: "a todos"})
	require.NoError(t, err)
	assert.Nil(t, msg.TerritoryZone)
}

func TestSendMessage_ZonaAjenaDenegada(t *testing.T) {
	fx := newFixture(t)
	loginAna(t, fx)

	_, err := fx.mgr.SendMessage(context.Background(), "ana", session.SendMessageInput{
		Content: "hola sur", TargetZone: zonePtr(entity.ZonaSur),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El mensaje enviado llega a la propia sesión por el feed, no por mutación local.
func TestSendMessage_PropiaZonaLlegaPorElFeed(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	msg, err := fx.mgr.SendMessage(context.Background(), "ana", session.SendMessageInput{
		Content: "hola norte", TargetZone: zonePtr(entity.ZonaNorte),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sess.State().MessageByID(msg.ID) != nil
	}, time.Second, 5*time.Millisecond, "la sesión del remitente recibe su propio evento")

	got := sess.State().Messages()[0]
	assert.Equal(t, msg.ID, got.ID, "el mensaje nuevo queda primero")
	assert.Equal(t, "Ana Líder", got.SenderName)
}

func TestMarkMessageRead_OptimistaEIdempotente(t *testing.T) {
	fx := newFixture(t)
	sess := loginAna(t, fx)

	require.NoError(t, fx.mgr.MarkMessageRead(context.Background(), "ana", "m2"))
	require.NoError(t, fx.mgr.MarkMessageRead(context.Background(), "ana", "m2"))

	m := sess.State().MessageByID("m2")
	require.NotNil(t, m)
	count := 0
	for _, id := range m.ReadBy {
		if id == "ana" {
			count++
		}
	}
	assert.Equal(t, 1, count, "read_by debe contener el id exactamente una vez")

	require.Eventually(t, func() bool {
		return fx.messages.markReadCount() >= 1
	}, time.Second, 10*time.Millisecond, "la escritura remota se dispara fire-and-forget")
}

func TestMarkMessageRead_MensajeFueraDelConjuntoVisible(t *testing.T) {
	fx := newFixture(t)
	loginAna(t, fx)
	err := fx.mgr.MarkMessageRead(context.Background(), "ana", "m1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "m1 es de zona ajena y no está en el conjunto visible")
}
