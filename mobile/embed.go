//go:build mobile

// embed.go - 移动端配置嵌入声明
// 构建前需要先把项目根目录的 data/ 复制到 mobile/data/
package mobile

import "embed"

//go:embed data/world.yaml data/units.yaml data/boss_variants.yaml data/levels
var dataFS embed.FS
