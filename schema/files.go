package schema

// Files is the full set of top-level file schemas (spec §6.1's input file
// set), in the declaration order the DDL and row lowerings walk them.
// Grounded on original_source/rpgxp/schema.py's FILES list.
var Files = []FileSchema{
	SingleFileSchema{Path: "Actors.rxdata", Schema: ActorSchema},
	SingleFileSchema{Path: "Classes.rxdata", Schema: ClassSchema},
	SingleFileSchema{Path: "Skills.rxdata", Schema: SkillSchema},
	SingleFileSchema{Path: "Items.rxdata", Schema: ItemSchema},
	SingleFileSchema{Path: "Weapons.rxdata", Schema: WeaponSchema},
	SingleFileSchema{Path: "Armors.rxdata", Schema: ArmorSchema},
	SingleFileSchema{Path: "Enemies.rxdata", Schema: EnemySchema},
	SingleFileSchema{Path: "Troops.rxdata", Schema: TroopSchema},
	SingleFileSchema{Path: "States.rxdata", Schema: StateSchema},
	SingleFileSchema{Path: "Animations.rxdata", Schema: AnimationSchema},
	SingleFileSchema{Path: "Tilesets.rxdata", Schema: TilesetSchema},
	SingleFileSchema{Path: "CommonEvents.rxdata", Schema: CommonEventSchema},
	SingleFileSchema{Path: "System.rxdata", Schema: SystemSchema},
	SingleFileSchema{Path: "Scripts.rxdata", Schema: ScriptsSchema},
	SingleFileSchema{Path: "MapInfos.rxdata", Schema: MapInfosSchema},
	MapSchema,
}
