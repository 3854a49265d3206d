// Package object implements the per-object procedural animation and
// path-following motion system for scripted scene objects. Objects are
// built from spawn records extracted from archived game data and are
// stepped once per frame by the scene driver.
package object

// TypeID identifies an object type as encoded in the game data.
type TypeID uint16

// Object type catalog. The codes mirror the archived scene tables;
// names describe the placed prop, not its behavior.
const (
	TypeNone TypeID = iota

	// Street vehicles. All of these share the wheel animation.
	TypeSedan
	TypeCoupe
	TypeWagon
	TypeTaxi
	TypeBus
	TypeMinibus
	TypeTruck
	TypeTanker
	TypeVan
	TypePickup
	TypePatrolCar
	TypeAmbulance
	TypeFireTruck
	TypeTram
	TypeForklift
	TypeScooter
	TypeTractor
	TypeHauler
	TypeSweeper
	TypeDeliveryBike

	// Mechanical and decorative props.
	TypePropPlane
	TypeHelicopter
	TypeWindmill
	TypeFerrisWheel
	TypeWaterWheel
	TypeBalanceDoll
	TypeBuoy
	TypeMole
	TypeSignboard
	TypeTrapdoor
)

// Definition holds per-type static attributes from the object tables.
type Definition struct {
	// SpeedIndex selects the default speed from the speed table when a
	// spawn's motion parameters carry the default-speed sentinel.
	SpeedIndex int

	// StayLevel suppresses pitch adjustment on path followers; the
	// object keeps its base frame level regardless of path slope.
	StayLevel bool
}

// speedTable is the per-index default speed in world units per frame.
var speedTable = [...]float32{0.5, 1.0, 2.0, 3.0, 4.5, 6.0, 8.0}

var definitions = map[TypeID]Definition{
	TypeSedan:        {SpeedIndex: 3},
	TypeCoupe:        {SpeedIndex: 4},
	TypeWagon:        {SpeedIndex: 3},
	TypeTaxi:         {SpeedIndex: 4},
	TypeBus:          {SpeedIndex: 2},
	TypeMinibus:      {SpeedIndex: 2},
	TypeTruck:        {SpeedIndex: 2},
	TypeTanker:       {SpeedIndex: 1},
	TypeVan:          {SpeedIndex: 3},
	TypePickup:       {SpeedIndex: 3},
	TypePatrolCar:    {SpeedIndex: 5},
	TypeAmbulance:    {SpeedIndex: 5},
	TypeFireTruck:    {SpeedIndex: 4},
	TypeTram:         {SpeedIndex: 2, StayLevel: true},
	TypeForklift:     {SpeedIndex: 1},
	TypeScooter:      {SpeedIndex: 3},
	TypeTractor:      {SpeedIndex: 1},
	TypeHauler:       {SpeedIndex: 1},
	TypeSweeper:      {SpeedIndex: 1},
	TypeDeliveryBike: {SpeedIndex: 3},
	TypePropPlane:    {SpeedIndex: 6},
	TypeHelicopter:   {SpeedIndex: 5, StayLevel: true},
	TypeBuoy:         {SpeedIndex: 0, StayLevel: true},
}

// DefinitionFor returns the static attributes for a type. Unknown types
// get the zero definition (slowest speed index, pitch adjustment on).
func DefinitionFor(t TypeID) Definition {
	return definitions[t]
}

// DefaultSpeed returns the speed-table entry for a definition.
func (d Definition) DefaultSpeed() float32 {
	if d.SpeedIndex < 0 || d.SpeedIndex >= len(speedTable) {
		return speedTable[0]
	}
	return speedTable[d.SpeedIndex]
}

// Spawn is one placed object read from the scene data. Immutable after
// creation.
type Spawn struct {
	Type TypeID

	// Initial world placement.
	Pos [3]float32
	Yaw float32

	// Display area range [DispOnArea, DispOffArea). DispOffArea of -1
	// means the object is never hidden once its area is reached.
	DispOnArea  int
	DispOffArea int
}
