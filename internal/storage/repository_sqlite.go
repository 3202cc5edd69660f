package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

var ErrNotFound = errors.New("record not found")

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateGame(g *game.Game) error {
	return r.db.Create(g).Error
}

func (r *sqliteRepository) GetGameByID(id uint) (*game.Game, error) {
	var g game.Game
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *sqliteRepository) UpdateGame(g *game.Game) error {
	return r.db.Save(g).Error
}

func (r *sqliteRepository) ListGamesByPlayer(playerUUID string) ([]game.Game, error) {
	var games []game.Game
	err := r.db.Where("player_uuid = ?", playerUUID).Order("updated_at desc").Find(&games).Error
	return games, err
}

func (r *sqliteRepository) FindIdleGames(cutoff time.Time) ([]game.Game, error) {
	var games []game.Game
	err := r.db.Where("status = ? AND last_action_at <= ?", game.StatusInProgress, cutoff).Find(&games).Error
	return games, err
}
