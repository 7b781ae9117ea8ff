package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Layout
	message.SetString(lang, "app.name", "PetClinic")
	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.find_owners", "Buscar proprietários")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Page titles
	message.SetString(lang, "title.owner_new", "Novo Proprietário")
	message.SetString(lang, "title.owner_edit", "Editar Proprietário")
	message.SetString(lang, "title.error", "Erro")

	// Owner fields
	message.SetString(lang, "owner.first_name", "Nome")
	message.SetString(lang, "owner.last_name", "Sobrenome")
	message.SetString(lang, "owner.name", "Nome")
	message.SetString(lang, "owner.address", "Endereço")
	message.SetString(lang, "owner.city", "Cidade")
	message.SetString(lang, "owner.telephone", "Telefone")
	message.SetString(lang, "owner.pets", "Pets")

	// Find page
	message.SetString(lang, "owners.find.heading", "Buscar Proprietários")
	message.SetString(lang, "owners.find.submit", "Buscar Proprietário")
	message.SetString(lang, "owners.find.add", "Adicionar Proprietário")

	// List page
	message.SetString(lang, "owners.list.heading", "Proprietários")
	message.SetString(lang, "owners.list.pages", "Páginas:")
	message.SetString(lang, "owners.list.page_of", "Página %d de %d")
	message.SetString(lang, "owners.list.total", "%d proprietários encontrados")
	message.SetString(lang, "pagination.first", "Primeira")
	message.SetString(lang, "pagination.previous", "Anterior")
	message.SetString(lang, "pagination.next", "Próxima")
	message.SetString(lang, "pagination.last", "Última")

	// Owner form
	message.SetString(lang, "owner.form.heading", "Proprietário")
	message.SetString(lang, "owner.form.submit_add", "Adicionar Proprietário")
	message.SetString(lang, "owner.form.submit_update", "Atualizar Proprietário")

	// Owner details
	message.SetString(lang, "owner.details.heading", "Dados do Proprietário")
	message.SetString(lang, "owner.details.edit", "Editar Proprietário")
	message.SetString(lang, "owner.details.pets", "Pets")
	message.SetString(lang, "pet.name", "Nome")
	message.SetString(lang, "pet.birth_date", "Data de Nascimento")
	message.SetString(lang, "pet.type", "Tipo")

	// Validation messages
	message.SetString(lang, "validation.required", "é obrigatório")
	message.SetString(lang, "validation.telephone", "deve ser um número de 10 dígitos")
	message.SetString(lang, "validation.not_found", "não encontrado")

	// Error pages
	message.SetString(lang, "error.heading", "Algo aconteceu...")
	message.SetString(lang, "error.not_found", "A página que você procura não existe.")
	message.SetString(lang, "error.internal", "Estamos trabalhando nisso. Tente novamente mais tarde.")
	message.SetString(lang, "error.back", "Voltar aos proprietários")
}
