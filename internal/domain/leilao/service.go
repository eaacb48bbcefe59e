package leilao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"adocato/internal/platform/metrics"
)

var (
	ErrNotFound             = errors.New("registro não encontrado")
	ErrParticipanteInvalido = errors.New("participante não encontrado")
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) CreateParticipante(ctx context.Context, nome, email, endereco string) (Participante, error) {
	p := Participante{
		ID:       uuid.NewString(),
		Nome:     strings.TrimSpace(nome),
		Email:    strings.TrimSpace(email),
		Endereco: strings.TrimSpace(endereco),
	}
	if err := s.repo.CreateParticipante(ctx, p); err != nil {
		return Participante{}, err
	}
	return p, nil
}

func (s *Service) CreateLeilao(ctx context.Context, inicio, termino time.Time) (Leilao, error) {
	l := Leilao{
		ID:      uuid.NewString(),
		Inicio:  inicio,
		Termino: termino,
	}
	if err := s.repo.CreateLeilao(ctx, l); err != nil {
		return Leilao{}, err
	}
	return l, nil
}

func (s *Service) CreateItem(ctx context.Context, leilaoID, titulo, descricao string, lanceMinimo float64) (ItemLeilao, error) {
	if _, err := s.repo.GetLeilao(ctx, strings.TrimSpace(leilaoID)); err != nil {
		return ItemLeilao{}, ErrNotFound
	}

	i := ItemLeilao{
		ID:          uuid.NewString(),
		LeilaoID:    strings.TrimSpace(leilaoID),
		Titulo:      strings.TrimSpace(titulo),
		Descricao:   strings.TrimSpace(descricao),
		LanceMinimo: lanceMinimo,
	}
	if err := s.repo.CreateItem(ctx, i); err != nil {
		return ItemLeilao{}, err
	}
	return i, nil
}

// RegistrarLance grava o lance com a hora do service. Não há regra de
// valor mínimo aqui: o domínio original não a impõe.
func (s *Service) RegistrarLance(ctx context.Context, itemID, participanteID string, valor float64) (Lance, error) {
	if _, err := s.repo.GetItem(ctx, strings.TrimSpace(itemID)); err != nil {
		return Lance{}, ErrNotFound
	}
	if _, err := s.repo.GetParticipante(ctx, strings.TrimSpace(participanteID)); err != nil {
		return Lance{}, ErrParticipanteInvalido
	}

	l := Lance{
		ID:             uuid.NewString(),
		ItemID:         strings.TrimSpace(itemID),
		ParticipanteID: strings.TrimSpace(participanteID),
		Valor:          valor,
		HoraLance:      s.now(),
	}
	if err := s.repo.CreateLance(ctx, l); err != nil {
		return Lance{}, err
	}
	s.metrics.IncLancesRegistrados()
	return l, nil
}

func (s *Service) ListLeiloes(ctx context.Context) ([]Leilao, error) {
	return s.repo.ListLeiloes(ctx)
}

func (s *Service) GetLeilao(ctx context.Context, id string) (Leilao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Leilao{}, ErrNotFound
	}
	return s.repo.GetLeilao(ctx, id)
}

// Relatorio lista os itens do leilão (filtro opcional por título) com o
// total de lances de cada um.
func (s *Service) Relatorio(ctx context.Context, leilaoID, titulo string) ([]ItemRelatorio, error) {
	leilaoID = strings.TrimSpace(leilaoID)
	if _, err := s.repo.GetLeilao(ctx, leilaoID); err != nil {
		return nil, ErrNotFound
	}

	itens, err := s.repo.ListItens(ctx, leilaoID, strings.TrimSpace(titulo))
	if err != nil {
		return nil, err
	}

	out := make([]ItemRelatorio, 0, len(itens))
	for _, item := range itens {
		total, err := s.repo.CountLances(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ItemRelatorio{ItemLeilao: item, TotalLances: total})
	}
	return out, nil
}
