package gcode

import (
	"errors"

	"github.com/mastercactapus/gcgeom/coord"
)

// VM will track state and interpret gcode.
type VM struct {
	pos coord.Point
	wco coord.Point

	modal [256]float64

	feed float64

	e         float64
	relativeE bool
	extruded  float64
}

// NewVM constructs a new VM with default state.
func NewVM() *VM {
	vm := &VM{}

	// using grbl defaults
	vm.modal[ModalGroupMotion] = 0
	vm.modal[ModalGroupCoordinateSystem] = 54
	vm.modal[ModalGroupPlaneSelection] = 17
	vm.modal[ModalGroupDistanceMode] = 90
	vm.modal[ModalGroupArcDistanceMode] = 91.1
	vm.modal[ModalGroupFeedRateMode] = 94
	vm.modal[ModalGroupUnits] = 21
	vm.modal[ModalGroupCutterCompensationMode] = 40
	vm.modal[ModalGroupToolLength] = 49
	vm.modal[ModalGroupStopping] = 0
	vm.modal[ModalGroupSpindle] = 5
	vm.modal[ModalGroupCoolant] = 9

	return vm
}

func (vm VM) Inches() bool         { return vm.modal[ModalGroupUnits] == 20 }
func (vm VM) RelativeMotion() bool { return vm.modal[ModalGroupDistanceMode] == 91 }

// RelativeExtrusion reports whether E words are deltas (M83) rather
// than absolute positions (M82). G91 also makes E relative.
func (vm VM) RelativeExtrusion() bool { return vm.relativeE || vm.RelativeMotion() }

// Motion returns the active motion code (0 for rapid, 1 for linear).
func (vm VM) Motion() float64 { return vm.modal[ModalGroupMotion] }

func (vm VM) WPos() coord.Point {
	return vm.pos.Sub(vm.wco)
}
func (vm VM) MPos() coord.Point {
	return vm.pos
}

// E returns the current absolute extruder position.
func (vm VM) E() float64 { return vm.e }

// Extruded returns how far the extruder moved during the last block.
// Redefining E with G92 is not extrusion and reports 0.
func (vm VM) Extruded() float64 { return vm.extruded }

// Feed returns the last feed rate seen.
func (vm VM) Feed() float64 { return vm.feed }

// isUnsupported reports codes whose resulting position the VM
// can't know.
func isUnsupported(g Word) bool {
	if g.W != 'G' {
		return false
	}
	if g.ModalGroup() == ModalGroupMotion {
		return g.Arg != 0 && g.Arg != 1
	}
	return g.Arg == 30
}

func applyBlock(p coord.Point, b Block, mul float64) coord.Point {
	for _, g := range b {
		switch g.W {
		case 'X':
			p.X = g.Arg * mul
		case 'Y':
			p.Y = g.Arg * mul
		case 'Z':
			p.Z = g.Arg * mul
		}
	}

	return p
}

func (vm *VM) Run(b Block) error {
	err := b.Validate()
	if err != nil {
		return err
	}
	vm.extruded = 0
	var machineCoords, setPos, home bool
	for _, g := range b {
		if isUnsupported(g) {
			return errors.New("unsupported code: " + g.String())
		}
		mg := g.ModalGroup()
		if mg != ModalGroupNone && mg != ModalGroupNonModal {
			vm.modal[mg] = g.Arg
		}
		switch g {
		case Word{W: 'G', Arg: 53}:
			machineCoords = true
		case Word{W: 'G', Arg: 92}:
			setPos = true
		case Word{W: 'G', Arg: 28}:
			home = true
		case Word{W: 'M', Arg: 82}:
			vm.relativeE = false
		case Word{W: 'M', Arg: 83}:
			vm.relativeE = true
		}
		if g.W == 'F' {
			vm.feed = g.Arg
		}
	}

	args := b.Args()
	if home {
		vm.home(args)
		return nil
	}
	if len(args) == 0 {
		return nil
	}

	mul := 1.0
	if vm.Inches() {
		mul = 25.4
	}

	if setPos {
		// G92 redefines the current position without moving
		wpos := applyBlock(vm.WPos(), args, mul)
		vm.wco = vm.pos.Sub(wpos)
		if ok, e := args.Arg('E'); ok {
			vm.e = e
		}
		return nil
	}

	if ok, e := args.Arg('E'); ok {
		old := vm.e
		if vm.RelativeExtrusion() {
			vm.e += e
		} else {
			vm.e = e
		}
		vm.extruded = vm.e - old
	}

	// apply motion
	if vm.RelativeMotion() {
		vm.pos = vm.pos.Add(applyBlock(coord.Point{}, args, mul))
	} else if machineCoords {
		vm.pos = applyBlock(vm.pos, args, 1)
	} else {
		vm.pos = applyBlock(vm.WPos(), args, mul).Add(vm.wco)
	}

	return nil
}

// home moves the named axes (all of them if none are named) to
// machine zero.
func (vm *VM) home(args Block) {
	var named bool
	for _, g := range args {
		switch g.W {
		case 'X':
			vm.pos.X = 0
		case 'Y':
			vm.pos.Y = 0
		case 'Z':
			vm.pos.Z = 0
		default:
			continue
		}
		named = true
	}
	if !named {
		vm.pos = coord.Point{}
	}
}
