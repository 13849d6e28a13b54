package config

import (
	"fmt"
	"log"

	"github.com/gonewx/skybattle/pkg/embedded"
)

// Catalog 一次加载的全部游戏配置
// 关卡之间的引用（下一关、敌机类型、Boss 变体）在加载时统一校验
type Catalog struct {
	World  *WorldConfig
	Units  *UnitsConfig
	Bosses *BossVariantsConfig
	Levels []*LevelConfig

	levelIndex map[string]*LevelConfig
}

// LoadCatalog 从嵌入文件加载所有配置
//
// 返回：
//
//	*Catalog - 已交叉校验的配置集合
//	error - 任一文件读取、解析或引用校验失败
func LoadCatalog() (*Catalog, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("load catalog: data files not available, call embedded.Init first")
	}
	world, err := LoadWorldConfig(WorldConfigPath)
	if err != nil {
		return nil, err
	}
	units, err := LoadUnitsConfig(UnitsConfigPath)
	if err != nil {
		return nil, err
	}
	bosses, err := LoadBossVariants(BossVariantsConfigPath)
	if err != nil {
		return nil, err
	}
	levels, err := LoadAllLevels(LevelsDir)
	if err != nil {
		return nil, err
	}

	return NewCatalog(world, units, bosses, levels)
}

// NewCatalog 组装并交叉校验配置集合
func NewCatalog(world *WorldConfig, units *UnitsConfig, bosses *BossVariantsConfig, levels []*LevelConfig) (*Catalog, error) {
	c := &Catalog{
		World:      world,
		Units:      units,
		Bosses:     bosses,
		Levels:     levels,
		levelIndex: make(map[string]*LevelConfig, len(levels)),
	}
	for _, lc := range levels {
		c.levelIndex[lc.ID] = lc
	}

	if err := c.validateReferences(); err != nil {
		return nil, err
	}

	log.Printf("[Catalog] Loaded %d levels, %d enemy types, %d boss variants",
		len(levels), len(units.Enemies), len(bosses.Variants))
	return c, nil
}

// Level 按ID查找关卡
func (c *Catalog) Level(id string) (*LevelConfig, bool) {
	lc, ok := c.levelIndex[id]
	return lc, ok
}

// FirstLevel 返回关卡序列的第一关
func (c *Catalog) FirstLevel() *LevelConfig {
	if len(c.Levels) == 0 {
		return nil
	}
	return c.Levels[0]
}

// WorldFor 返回关卡使用的世界配置（关卡可覆盖默认值）
func (c *Catalog) WorldFor(lc *LevelConfig) WorldConfig {
	if lc != nil && lc.World != nil {
		return *lc.World
	}
	return *c.World
}

// validateReferences 校验关卡对敌机类型、Boss 变体和下一关的引用
//
// 下一关缺失不算加载错误：关卡切换时才会以提示的形式暴露给玩家，
// 这里只记录警告，方便 check_levels 工具提前发现。
func (c *Catalog) validateReferences() error {
	if len(c.Levels) == 0 {
		return invalidf("catalog has no levels")
	}

	for _, lc := range c.Levels {
		for _, enemyType := range lc.EnemyTypes {
			if _, ok := c.Units.Enemies[enemyType]; !ok {
				return invalidf("level %s: unknown enemy type %q", lc.ID, enemyType)
			}
		}
		for _, bossID := range lc.Bosses {
			if _, ok := c.Bosses.Variants[bossID]; !ok {
				return invalidf("level %s: unknown boss variant %q", lc.ID, bossID)
			}
		}
		if lc.NextLevel != "" {
			if _, ok := c.levelIndex[lc.NextLevel]; !ok {
				log.Printf("[Catalog] Warning: level %s points to missing next level %q", lc.ID, lc.NextLevel)
			}
		}
	}
	return nil
}

// MissingNextLevels 返回所有指向不存在关卡的 (关卡ID -> 下一关ID)
func (c *Catalog) MissingNextLevels() map[string]string {
	missing := make(map[string]string)
	for _, lc := range c.Levels {
		if lc.NextLevel == "" {
			continue
		}
		if _, ok := c.levelIndex[lc.NextLevel]; !ok {
			missing[lc.ID] = lc.NextLevel
		}
	}
	return missing
}

// String 摘要（日志/工具用）
func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog{levels=%d, enemies=%d, bosses=%d}", len(c.Levels), len(c.Units.Enemies), len(c.Bosses.Variants))
}
