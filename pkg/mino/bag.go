package mino

import (
	"math/rand"
)

// Source decides which kind spawns next.
type Source interface {
	// Take returns the next kind and advances the source.
	Take() Kind
	// Next returns the kind Take will return without advancing.
	Next() Kind
}

// Random draws every kind independently and uniformly.
type Random struct {
	r    *rand.Rand
	next Kind
}

func NewRandom(seed int64) *Random {
	r := &Random{r: rand.New(rand.NewSource(seed))}
	r.next = r.draw()

	return r
}

func (r *Random) draw() Kind {
	return Kinds[r.r.Intn(len(Kinds))]
}

func (r *Random) Take() Kind {
	k := r.next
	r.next = r.draw()

	return k
}

func (r *Random) Next() Kind {
	return r.next
}

// Bag deals all seven kinds in a shuffled order before reshuffling.
type Bag struct {
	Kinds []Kind

	r *rand.Rand
	i int
}

func NewBag(seed int64) *Bag {
	b := &Bag{r: rand.New(rand.NewSource(seed))}
	b.shuffle()

	return b
}

func (b *Bag) Take() Kind {
	k := b.Kinds[b.i]
	if b.i == len(b.Kinds)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return k
}

func (b *Bag) Next() Kind {
	return b.Kinds[b.i]
}

func (b *Bag) shuffle() {
	if b.Kinds == nil {
		b.Kinds = make([]Kind, len(Kinds))
	}
	copy(b.Kinds, Kinds)

	b.r.Shuffle(len(b.Kinds), func(i, j int) { b.Kinds[i], b.Kinds[j] = b.Kinds[j], b.Kinds[i] })
}

// Sequence repeats a fixed list of kinds.
type Sequence struct {
	kinds []Kind
	i     int
}

// NewSequence returns a source cycling through kinds. It panics when kinds is
// empty.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("mino: empty sequence")
	}

	return &Sequence{kinds: kinds}
}

func (s *Sequence) Take() Kind {
	k := s.kinds[s.i]
	s.i = (s.i + 1) % len(s.kinds)

	return k
}

func (s *Sequence) Next() Kind {
	return s.kinds[s.i]
}
