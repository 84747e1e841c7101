// Package sales coordena as escritas e exclusões que atravessam mais de uma
// entidade e monta as visões agregadas de vendas.
package sales

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/building"
	"github.com/salestrack/sales-api/internal/client"
	"github.com/salestrack/sales-api/internal/internet"
	"github.com/salestrack/sales-api/internal/meeting"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/office"
	"gorm.io/gorm"
)

// Coordinator reúne os repositórios de todas as entidades. Toda operação abre
// uma única transação e só usa o tx dentro dela.
type Coordinator struct {
	Clients   client.Repository
	Meetings  meeting.Repository
	Internet  internet.Repository
	Buildings building.Repository
	Offices   office.Repository
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		Clients:   client.NewRepository(),
		Meetings:  meeting.NewRepository(),
		Internet:  internet.NewRepository(),
		Buildings: building.NewRepository(),
		Offices:   office.NewRepository(),
	}
}

// CreatedIDs são os ids gravados por uma criação em lote. Campos zerados não
// fazem parte da operação.
type CreatedIDs struct {
	ClientID       uint `json:"client_id,omitempty"`
	MeetingID      uint `json:"meeting_id,omitempty"`
	InternetID     uint `json:"internet_id,omitempty"`
	BuildingID     uint `json:"building_id"`
	OfficeID       uint `json:"office_id"`
	BuildingReused bool `json:"building_reused"`
}

// CascadeSummary conta as linhas removidas por tabela.
type CascadeSummary struct {
	Clients   int64 `json:"clients"`
	Meetings  int64 `json:"meetings"`
	Internet  int64 `json:"internet"`
	Buildings int64 `json:"buildings"`
	Offices   int64 `json:"offices"`
}

func (s CascadeSummary) Total() int64 {
	return s.Clients + s.Meetings + s.Internet + s.Buildings + s.Offices
}

func (s CascadeSummary) log(e *zerolog.Event) *zerolog.Event {
	return e.Int64("clients", s.Clients).
		Int64("meetings", s.Meetings).
		Int64("internet", s.Internet).
		Int64("buildings", s.Buildings).
		Int64("offices", s.Offices)
}

// resolveBuilding devolve o prédio com o nome de b, criando-o se não existir.
func (c *Coordinator) resolveBuilding(tx *gorm.DB, b *models.Building) (*models.Building, bool, error) {
	existing, err := c.Buildings.FindByName(tx, b.BuildingName)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, false, err
	}
	if err := c.Buildings.Create(tx, b); err != nil {
		return nil, false, err
	}
	return b, false, nil
}

// CreateSalesRecord grava cliente, reunião, negócio de internet, prédio e
// escritório numa única transação. Um prédio com o mesmo nome é reaproveitado
// e mantém o dono original; um prédio novo passa a pertencer ao cliente.
func (c *Coordinator) CreateSalesRecord(ctx context.Context, db *gorm.DB, in SalesRecordInput) (*CreatedIDs, error) {
	p, err := in.plan()
	if err != nil {
		return nil, err
	}

	var ids CreatedIDs
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, reused, err := c.resolveBuilding(tx, p.building)
		if err != nil {
			return err
		}
		if err := c.Clients.Create(tx, p.client); err != nil {
			return err
		}
		clientID := p.client.ID
		if !reused {
			if err := c.Buildings.SetOwner(tx, b.ID, clientID); err != nil {
				return err
			}
		}

		p.office.BuildingID = b.ID
		p.office.ClientID = &clientID
		if err := c.Offices.Create(tx, p.office); err != nil {
			return err
		}
		p.meeting.ClientID = &clientID
		if err := c.Meetings.Create(tx, p.meeting); err != nil {
			return err
		}
		p.internet.ClientID = clientID
		if err := c.Internet.Create(tx, p.internet); err != nil {
			return err
		}

		ids = CreatedIDs{
			ClientID:       clientID,
			MeetingID:      p.meeting.ID,
			InternetID:     p.internet.ID,
			BuildingID:     b.ID,
			OfficeID:       p.office.ID,
			BuildingReused: reused,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("client_id", ids.ClientID).
		Uint("building_id", ids.BuildingID).
		Bool("building_reused", ids.BuildingReused).
		Msg("sales record created")
	return &ids, nil
}

// CreateLocation grava prédio (reaproveitado pelo nome) e escritório.
func (c *Coordinator) CreateLocation(ctx context.Context, db *gorm.DB, in LocationInput) (*CreatedIDs, error) {
	b, o, err := in.plan()
	if err != nil {
		return nil, err
	}

	var ids CreatedIDs
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, reused, err := c.resolveBuilding(tx, b)
		if err != nil {
			return err
		}
		o.BuildingID = resolved.ID
		if err := c.Offices.Create(tx, o); err != nil {
			return err
		}
		ids = CreatedIDs{BuildingID: resolved.ID, OfficeID: o.ID, BuildingReused: reused}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ids, nil
}

// DeleteClientCascade remove o cliente e tudo que depende dele, na ordem das
// FKs: escritórios, prédios do cliente, internet, reuniões e o cliente.
// Escritórios de outros clientes em prédios deste cliente também saem.
func (c *Coordinator) DeleteClientCascade(ctx context.Context, db *gorm.DB, clientID uint) (*CascadeSummary, error) {
	var s CascadeSummary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := c.Clients.FindByID(tx, clientID); err != nil {
			return err
		}
		var err error
		if s.Offices, err = c.Offices.DeleteForClient(tx, clientID); err != nil {
			return err
		}
		if s.Buildings, err = c.Buildings.DeleteOwnedBy(tx, clientID); err != nil {
			return err
		}
		if s.Internet, err = c.Internet.DeleteByClient(tx, clientID); err != nil {
			return err
		}
		if s.Meetings, err = c.Meetings.DeleteByClient(tx, clientID); err != nil {
			return err
		}
		if err := c.Clients.Delete(tx, clientID); err != nil {
			return err
		}
		s.Clients = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log(zerolog.Ctx(ctx).Info()).Uint("client_id", clientID).Msg("client deleted")
	return &s, nil
}

// DeleteBuildingCascade remove os escritórios do prédio e depois o prédio.
func (c *Coordinator) DeleteBuildingCascade(ctx context.Context, db *gorm.DB, buildingID uint) (*CascadeSummary, error) {
	var s CascadeSummary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := c.Buildings.FindByID(tx, buildingID); err != nil {
			return err
		}
		var err error
		if s.Offices, err = c.Offices.DeleteByBuilding(tx, buildingID); err != nil {
			return err
		}
		if err := c.Buildings.Delete(tx, buildingID); err != nil {
			return err
		}
		s.Buildings = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log(zerolog.Ctx(ctx).Info()).Uint("building_id", buildingID).Msg("building deleted")
	return &s, nil
}

// ClearAllData esvazia as tabelas de vendas. Usuários são preservados.
// Só existe para ambientes de desenvolvimento.
func (c *Coordinator) ClearAllData(ctx context.Context, db *gorm.DB) (*CascadeSummary, error) {
	var s CascadeSummary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		steps := []struct {
			model interface{}
			count *int64
		}{
			{&models.Office{}, &s.Offices},
			{&models.Building{}, &s.Buildings},
			{&models.Internet{}, &s.Internet},
			{&models.Meeting{}, &s.Meetings},
			{&models.Client{}, &s.Clients},
		}
		for _, step := range steps {
			res := all.Delete(step.model)
			if res.Error != nil {
				return apperr.FromDB(res.Error, "data")
			}
			*step.count = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log(zerolog.Ctx(ctx).Warn()).Msg("all sales data cleared")
	return &s, nil
}
