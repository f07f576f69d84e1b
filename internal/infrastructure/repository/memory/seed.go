package memory

import "github.com/gabrielsantos8/futclebs/internal/domain/player"

// Seed identifiers are exported so dev tooling and tests can reference fixed
// accounts without re-listing the roster.
const (
	PlayerIDCarlao   = "plr-gk-carlao"
	PlayerIDBetao    = "plr-gk-betao"
	PlayerIDTiago    = "plr-tiago"
	PlayerIDRafinha  = "plr-rafinha"
	PlayerIDDudu     = "plr-dudu"
	PlayerIDMarcos   = "plr-marcos"
	PlayerIDLeo      = "plr-leo"
	PlayerIDVini     = "plr-vini"
	PlayerIDJuninho  = "plr-juninho"
	PlayerIDFabio    = "plr-fabio"
	PlayerIDRenan    = "plr-renan"
	PlayerIDGustavo  = "plr-gustavo"
	PlayerIDAnderson = "plr-anderson"
	PlayerIDPedrao   = "plr-pedrao"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDCarlao, Name: "Carlão", Phone: "+5511987650001", IsGoalkeeper: true,
			Attributes: player.Attributes{Passe: 3.5, Defesa: 4.5, Overall: 4.0}},
		{ID: PlayerIDBetao, Name: "Betão", Phone: "+5511987650002", IsGoalkeeper: true,
			Attributes: player.Attributes{Passe: 3.0, Defesa: 4.0, Overall: 3.5}},
		{ID: PlayerIDTiago, Name: "Tiago", Phone: "+5511987650003",
			Positions:  []player.Position{player.PositionAttack},
			Attributes: player.Attributes{Velocidade: 4.5, Finalizacao: 4.5, Passe: 3.5, Drible: 4.0, Defesa: 2.0, Fisico: 3.5, Overall: 4.2}},
		{ID: PlayerIDRafinha, Name: "Rafinha", Phone: "+5511987650004",
			Positions:  []player.Position{player.PositionAttack, player.PositionMidfield},
			Attributes: player.Attributes{Velocidade: 4.0, Finalizacao: 4.0, Passe: 4.0, Drible: 4.5, Defesa: 2.5, Fisico: 3.0, Overall: 4.0}},
		{ID: PlayerIDDudu, Name: "Dudu", Phone: "+5511987650005",
			Positions:  []player.Position{player.PositionAttack},
			Attributes: player.Attributes{Velocidade: 3.5, Finalizacao: 3.5, Passe: 3.0, Drible: 3.5, Defesa: 2.0, Fisico: 3.0, Overall: 3.3}},
		{ID: PlayerIDMarcos, Name: "Marcos", Phone: "+5511987650006",
			Positions:  []player.Position{player.PositionMidfield},
			Attributes: player.Attributes{Velocidade: 3.5, Finalizacao: 3.0, Passe: 4.5, Drible: 3.5, Defesa: 3.5, Fisico: 3.5, Overall: 3.8}},
		{ID: PlayerIDLeo, Name: "Léo", Phone: "+5511987650007",
			Positions:  []player.Position{player.PositionMidfield, player.PositionDefense},
			Attributes: player.Attributes{Velocidade: 3.0, Finalizacao: 2.5, Passe: 4.0, Drible: 3.0, Defesa: 4.0, Fisico: 4.0, Overall: 3.6}},
		{ID: PlayerIDVini, Name: "Vini", Phone: "+5511987650008",
			Positions:  []player.Position{player.PositionMidfield},
			Attributes: player.Attributes{Velocidade: 4.0, Finalizacao: 3.0, Passe: 3.5, Drible: 4.0, Defesa: 3.0, Fisico: 3.0, Overall: 3.4}},
		{ID: PlayerIDJuninho, Name: "Juninho", Phone: "+5511987650009",
			Positions:  []player.Position{player.PositionDefense},
			Attributes: player.Attributes{Velocidade: 3.0, Finalizacao: 2.0, Passe: 3.0, Drible: 2.5, Defesa: 4.5, Fisico: 4.5, Overall: 3.7}},
		{ID: PlayerIDFabio, Name: "Fábio", Phone: "+5511987650010",
			Positions:  []player.Position{player.PositionDefense},
			Attributes: player.Attributes{Velocidade: 2.5, Finalizacao: 2.0, Passe: 3.0, Drible: 2.0, Defesa: 4.0, Fisico: 4.0, Overall: 3.2}},
		{ID: PlayerIDRenan, Name: "Renan", Phone: "+5511987650011",
			Positions:  []player.Position{player.PositionDefense, player.PositionMidfield},
			Attributes: player.Attributes{Velocidade: 3.0, Finalizacao: 2.5, Passe: 3.5, Drible: 3.0, Defesa: 3.5, Fisico: 3.5, Overall: 3.3}},
		{ID: PlayerIDGustavo, Name: "Gustavo", Phone: "+5511987650012",
			Positions:  []player.Position{player.PositionAttack},
			Attributes: player.Attributes{Velocidade: 4.5, Finalizacao: 4.0, Passe: 3.0, Drible: 4.0, Defesa: 2.0, Fisico: 3.5, Overall: 3.9}},
		{ID: PlayerIDAnderson, Name: "Anderson", Phone: "+5511987650013",
			Attributes: player.Attributes{Velocidade: 3.0, Finalizacao: 3.0, Passe: 3.0, Drible: 3.0, Defesa: 3.0, Fisico: 3.0, Overall: 3.0}},
		{ID: PlayerIDPedrao, Name: "Pedrão", Phone: "+5511987650014",
			Positions:  []player.Position{player.PositionDefense},
			Attributes: player.Attributes{Velocidade: 2.5, Finalizacao: 2.5, Passe: 2.5, Drible: 2.5, Defesa: 3.5, Fisico: 4.5, Overall: 3.1}},
	}
}
