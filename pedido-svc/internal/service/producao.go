package service

import (
	"sort"

	"github.com/GuilhermeFincatti/Restaurante-Pedidos/pedido-svc/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ResumirProducao sums the quantity ordered of every menu item across all
// orders. Lines are grouped by menu item id; name, unit and category come
// from the first line seen for that item.
func ResumirProducao(pedidos []domain.Pedido) domain.ResumoProducao {
	grupos := make(map[int64]*domain.ItemProducao)
	for _, pedido := range pedidos {
		for _, item := range pedido.Itens {
			grupo, ok := grupos[item.CardapioID]
			if !ok {
				grupo = &domain.ItemProducao{
					CardapioID: item.CardapioID,
					Nome:       item.ItemNome,
					Unidade:    item.Unidade,
					Categoria:  item.Categoria,
					Quantidade: decimal.Zero,
				}
				if grupo.Unidade == "" {
					grupo.Unidade = domain.UnidadeUnitaria
				}
				if grupo.Categoria == "" {
					grupo.Categoria = domain.CategoriaCozinha
				}
				grupos[item.CardapioID] = grupo
			}
			grupo.Quantidade = grupo.Quantidade.Add(item.Quantidade)
		}
	}

	resumo := domain.ResumoProducao{
		Cozinha:     []domain.ItemProducao{},
		Confeitaria: []domain.ItemProducao{},
	}
	for _, grupo := range grupos {
		if grupo.Categoria == domain.CategoriaConfeitaria {
			resumo.Confeitaria = append(resumo.Confeitaria, *grupo)
		} else {
			resumo.Cozinha = append(resumo.Cozinha, *grupo)
		}
	}

	ordenarPorNome(resumo.Cozinha)
	ordenarPorNome(resumo.Confeitaria)
	return resumo
}

func ordenarPorNome(itens []domain.ItemProducao) {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(itens, func(i, j int) bool {
		if c := col.CompareString(itens[i].Nome, itens[j].Nome); c != 0 {
			return c < 0
		}
		return itens[i].CardapioID < itens[j].CardapioID
	})
}
