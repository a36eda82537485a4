package game

// PutSharkOnPlayer moves the first shark onto the seal.
func (g *Game) PutSharkOnPlayer() {
	g.sharks[0].X, g.sharks[0].Y = g.player.X, g.player.Y
}
