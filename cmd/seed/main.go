// seed puebla la base con datos de demostración: un usuario por rol repartido
// en las 5 zonas, registros financieros por zona y unos mensajes de arranque.
// Idempotente: los usuarios ya existentes (por email) se saltan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/infrastructure/postgres"
	"github.com/caucamais/MAIS-Platform/pkg/config"
	"github.com/caucamais/MAIS-Platform/pkg/logger"
)

// Contraseña inicial de demo; la plataforma exige cambiarla en el primer ingreso.
const seedPassword = "Cambiar123"

type seedUser struct {
	email    string
	fullName string
	role     entity.Role
	zone     entity.Zone
}

var seedUsers = []seedUser{
	{"nacional@maiscauca.co", "Dirección Nacional MAIS", entity.RoleComiteEjecutivoNacional, entity.ZonaCentro},
	{"regional.norte@maiscauca.co", "Líder Regional Norte", entity.RoleLiderRegional, entity.ZonaNorte},
	{"departamental@maiscauca.co", "Comité Departamental Cauca", entity.RoleComiteDepartamental, entity.ZonaCentro},
	{"candidato.sur@maiscauca.co", "Candidato Zona Sur", entity.RoleCandidato, entity.ZonaSur},
	{"digital.oriente@maiscauca.co", "Influenciador Oriente", entity.RoleInfluenciadorDigital, entity.ZonaOriente},
	{"comunitario.occidente@maiscauca.co", "Líder Comunitario Occidente", entity.RoleLiderComunitario, entity.ZonaOccidente},
	{"simpatizante@maiscauca.co", "Simpatizante Norte", entity.RoleVotanteSimpatizante, entity.ZonaNorte},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	messages := postgres.NewMessageRepository(pool)
	finances := postgres.NewFinanceRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	var nationalID string
	created := 0
	for _, su := range seedUsers {
		existing, err := users.GetByEmail(ctx, su.email)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("consulta de usuario")
		}
		if existing != nil {
			if existing.Role == entity.RoleComiteEjecutivoNacional {
				nationalID = existing.ID
			}
			log.Info().Str("email", su.email).Msg("usuario ya existe, se salta")
			continue
		}
		now := time.Now()
		u := &entity.User{
			ID:            uuid.New().String(),
			Email:         su.email,
			PasswordHash:  string(hash),
			FullName:      su.fullName,
			Role:          su.role,
			TerritoryZone: su.zone,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("crear usuario")
		}
		if su.role == entity.RoleComiteEjecutivoNacional {
			nationalID = u.ID
		}
		created++
	}
	log.Info().Int("creados", created).Msg("usuarios de demo")

	if created == 0 {
		log.Info().Msg("datos ya sembrados, nada que hacer")
		return
	}

	// Un registro financiero por zona más uno por la cabecera de cada zona.
	for _, zone := range entity.AllZones {
		cfgZone := entity.ZoneConfig[zone]
		rows := []struct {
			municipality string
			allocated    int64
		}{
			{"", 50_000_000},
			{cfgZone.Municipalities[0], 12_000_000},
		}
		for _, row := range rows {
			fin := &entity.CampaignFinance{
				ID:              uuid.New().String(),
				TerritoryZone:   zone,
				Municipality:    row.municipality,
				Income:          decimal.NewFromInt(row.allocated / 2),
				Expenses:        decimal.NewFromInt(row.allocated / 5),
				BudgetAllocated: decimal.NewFromInt(row.allocated),
				BudgetUsed:      decimal.NewFromInt(row.allocated / 4),
				LastUpdated:     time.Now(),
				UpdatedBy:       nationalID,
			}
			if err := finances.Create(ctx, fin); err != nil {
				log.Fatal().Err(err).Str("zona", string(zone)).Msg("crear registro financiero")
			}
		}
	}
	log.Info().Msg("finanzas de demo sembradas")

	norte := entity.ZonaNorte
	seedMessages := []*entity.Message{
		{
			ID: uuid.New().String(), SenderID: nationalID,
			SenderName: "Dirección Nacional MAIS", SenderRole: entity.RoleComiteEjecutivoNacional,
			Content:   "Bienvenidos a la plataforma de coordinación de campaña del MAIS Cauca.",
			CreatedAt: time.Now(), ReadBy: []string{},
		},
		{
			ID: uuid.New().String(), SenderID: nationalID,
			SenderName: "Dirección Nacional MAIS", SenderRole: entity.RoleComiteEjecutivoNacional,
			Content: "Reunión de coordinación de la zona norte este viernes.", TerritoryZone: &norte,
			IsUrgent: true, CreatedAt: time.Now(), ReadBy: []string{},
		},
	}
	for _, m := range seedMessages {
		if err := messages.Create(ctx, m); err != nil {
			log.Fatal().Err(err).Msg("crear mensaje")
		}
	}
	log.Info().Msg("mensajes de demo sembrados")
}
