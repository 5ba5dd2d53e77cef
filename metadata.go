package main

// columnDescription documents one column of the cleaned table.
type columnDescription struct {
	Column      string
	Description string
}

// Descrições das colunas, gravadas na aba Metadados.
var columnDescriptions = []columnDescription{
	{"ANO_CENSO", "Ano de referência do Censo Escolar"},
	{"REGIAO", "Região do Brasil"},
	{"UF", "Unidade Federativa"},
	{"DEPENDENCIA", "Dependência administrativa (Estadual, Municipal, Federal, Privada)"},
	{"CATEGORIA", "Categoria dos docentes (Total, Com Superior, Sem Superior)"},
	{"NUMERO_DOCENTES", "Número total de docentes"},
	{"PERCENTUAL_DOC_TEMPO_INTEGRAL", "Percentual de docentes em tempo integral"},
	{"REMUNERACAO_MINIMA", "Valor mínimo da remuneração dos docentes"},
	{"REMUNERACAO_MEDIANA", "Valor mediano da remuneração dos docentes"},
	{"REMUNERACAO_MEDIA", "Valor médio da remuneração dos docentes"},
	{"REMUNERACAO_75_PERCENTIL", "Valor do 75º percentil da remuneração dos docentes"},
	{"DESVIO_PADRAO_REMUNERACAO", "Desvio padrão da remuneração dos docentes"},
	{"COEF_VARIACAO_PERC", "Coeficiente de variação da remuneração em percentual"},
	{"REMUNERACAO_MEDIA_40H", "Remuneração média para jornada de 40 horas semanais"},
	{"TIPO_REDE", "Tipo de rede de ensino (Pública ou Privada)"},
	{"DIFERENCA_SALARIAL", "Diferença salarial entre docentes com e sem ensino superior"},
}
