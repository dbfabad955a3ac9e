package trackingcode

import (
	"strings"

	"github.com/lucsky/cuid"
)

const prefix = "RX-"

// Generator выдает публичные трек-коды заявок. cuid монотонен и
// коллизионно-устойчив при конкурентной генерации; код выдается один раз
// при создании заявки и больше не меняется.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() string {
	return prefix + strings.ToUpper(cuid.New())
}
