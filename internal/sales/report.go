package sales

import (
	"context"
	"sort"

	"github.com/salestrack/sales-api/internal/building"
	"github.com/salestrack/sales-api/internal/client"
	"github.com/salestrack/sales-api/internal/internet"
	"github.com/salestrack/sales-api/internal/meeting"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/office"
	"gorm.io/gorm"
)

// BuildingView é um prédio dentro da visão de um cliente. Owned indica se o
// cliente é o dono; prédios alheios trazem só os escritórios do cliente.
type BuildingView struct {
	building.BuildingDTO
	Owned bool `json:"owned"`
}

type ClientComplete struct {
	Client               client.ClientDTO       `json:"client"`
	Meetings             []meeting.MeetingDTO   `json:"meetings"`
	Internet             []internet.InternetDTO `json:"internet"`
	Buildings            []BuildingView         `json:"buildings"`
	TotalMeetings        int                    `json:"total_meetings"`
	TotalBuildings       int                    `json:"total_buildings"`
	TotalOffices         int                    `json:"total_offices"`
	TotalInternetRecords int                    `json:"total_internet_records"`
}

type SalesReport struct {
	Sales        []ClientComplete `json:"sales"`
	TotalClients int              `json:"total_clients"`
}

type Summary struct {
	TotalClients      int64 `json:"total_clients"`
	ScheduledMeetings int64 `json:"scheduled_meetings"`
	PendingDeals      int64 `json:"pending_deals"`
}

// GetClientComplete monta a visão completa de um cliente.
func (c *Coordinator) GetClientComplete(ctx context.Context, db *gorm.DB, clientID uint) (*ClientComplete, error) {
	var out *ClientComplete
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cl, err := c.Clients.FindByID(tx, clientID)
		if err != nil {
			return err
		}
		out, err = c.complete(tx, *cl)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllSales devolve a visão completa de todos os clientes, por id.
func (c *Coordinator) GetAllSales(ctx context.Context, db *gorm.DB) (*SalesReport, error) {
	report := SalesReport{Sales: []ClientComplete{}}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clients, err := c.Clients.ListAll(tx)
		if err != nil {
			return err
		}
		for _, cl := range clients {
			cc, err := c.complete(tx, cl)
			if err != nil {
				return err
			}
			report.Sales = append(report.Sales, *cc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.TotalClients = len(report.Sales)
	return &report, nil
}

func (c *Coordinator) CountSummary(ctx context.Context, db *gorm.DB) (*Summary, error) {
	var s Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if s.TotalClients, err = c.Clients.Count(tx); err != nil {
			return err
		}
		if s.ScheduledMeetings, err = c.Meetings.CountByStatus(tx, meeting.StatusScheduled); err != nil {
			return err
		}
		s.PendingDeals, err = c.Internet.CountByStatus(tx, internet.StatusPending)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Coordinator) complete(tx *gorm.DB, cl models.Client) (*ClientComplete, error) {
	meetings, err := c.Meetings.ListByClient(tx, cl.ID)
	if err != nil {
		return nil, err
	}
	deals, err := c.Internet.ListByClient(tx, cl.ID)
	if err != nil {
		return nil, err
	}
	buildings, err := c.buildingViews(tx, cl.ID)
	if err != nil {
		return nil, err
	}

	offices := 0
	for _, b := range buildings {
		offices += len(b.Offices)
	}
	return &ClientComplete{
		Client:               client.ToDTO(cl),
		Meetings:             meeting.ToDTOs(meetings),
		Internet:             internet.ToDTOs(deals),
		Buildings:            buildings,
		TotalMeetings:        len(meetings),
		TotalBuildings:       len(buildings),
		TotalOffices:         offices,
		TotalInternetRecords: len(deals),
	}, nil
}

// buildingViews junta os prédios do cliente (com todos os escritórios) e os
// prédios onde ele tem escritório sem ser dono.
func (c *Coordinator) buildingViews(tx *gorm.DB, clientID uint) ([]BuildingView, error) {
	owned, err := c.Buildings.ListOwnedBy(tx, clientID)
	if err != nil {
		return nil, err
	}
	views := make([]BuildingView, 0, len(owned))
	seen := make(map[uint]bool, len(owned))
	for _, b := range owned {
		offices, err := c.Offices.ListByBuilding(tx, b.ID)
		if err != nil {
			return nil, err
		}
		dto := building.ToDTO(b)
		dto.Offices = office.ToDTOs(offices)
		views = append(views, BuildingView{BuildingDTO: dto, Owned: true})
		seen[b.ID] = true
	}

	linked, err := c.Offices.ListByClient(tx, clientID)
	if err != nil {
		return nil, err
	}
	byBuilding := make(map[uint][]models.Office)
	for _, o := range linked {
		if !seen[o.BuildingID] {
			byBuilding[o.BuildingID] = append(byBuilding[o.BuildingID], o)
		}
	}
	ids := make([]uint, 0, len(byBuilding))
	for id := range byBuilding {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		b, err := c.Buildings.FindByID(tx, id)
		if err != nil {
			return nil, err
		}
		dto := building.ToDTO(*b)
		dto.Offices = office.ToDTOs(byBuilding[id])
		views = append(views, BuildingView{BuildingDTO: dto})
	}

	sort.SliceStable(views, func(i, j int) bool { return views[i].BuildingID < views[j].BuildingID })
	return views, nil
}
